package gtimer

import (
	"sync"
	"time"

	"github.com/godyy/glog"
	"github.com/godyy/gtimer/timersys"
)

// wrapper Interval 与 Timeout 共用的调度与暂停恢复逻辑.
type wrapper struct {
	mtx        sync.Mutex             // 互斥锁.
	ts         timersys.TimerSystem   // 底层定时器系统.
	lc         *lifecycle             // 生命周期状态机.
	logger     glog.Logger            // 日志工具.
	handle     timersys.TimerId       // 当前定时器ID.
	handler    Handler                // 回调.
	timeout    time.Duration          // 周期或延迟.
	args       []any                  // 回调参数.
	lastFireAt time.Time              // 最近一次触发(或启动)的时间.
	pauseAt    time.Time              // 暂停时间.
	periodOf   func() time.Duration   // 实际调度周期, 0 表示一次性.
	fire       timersys.TimerFunc     // 底层定时器回调.
	register   func(timersys.TimerId) // 登记到 Registry.
	unregister func(timersys.TimerId) // 从 Registry 注销.
}

// init 初始化. periodOf 返回实际调度周期, 0 表示一次性定时器.
func (w *wrapper) init(
	ts timersys.TimerSystem,
	logger glog.Logger,
	periodOf func() time.Duration,
	fire timersys.TimerFunc,
	register, unregister func(timersys.TimerId),
) {
	w.ts = ts
	w.lc = newLifecycle()
	w.logger = logger
	w.periodOf = periodOf
	w.fire = fire
	w.register = register
	w.unregister = unregister
}

// Handle 当前定时器ID, 未启动时为 TimerIdNone.
func (w *wrapper) Handle() timersys.TimerId {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.handle
}

// State 生命周期状态.
func (w *wrapper) State() State {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.lc.state()
}

// Paused 是否处于暂停状态. 清除后同样视为暂停.
func (w *wrapper) Paused() bool {
	s := w.State()
	return s == StatePaused || s == StateCleared
}

// Cleared 是否已清除.
func (w *wrapper) Cleared() bool {
	return w.State() == StateCleared
}

// Args 当前回调参数的副本.
func (w *wrapper) Args() []any {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]any(nil), w.args...)
}

// Pause 暂停. 未启动、已暂停或已清除时无操作.
func (w *wrapper) Pause() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.pauseLocked()
}

// Resume 恢复. 仅在暂停状态下生效, args 非空时替换回调参数.
// 恢复后首次触发的延迟为被暂停周期的剩余时间. 底层定时器系统拒绝调度时定时器被清除.
func (w *wrapper) Resume(args ...any) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	_ = w.resumeLocked(args)
}

// Clear 清除. 清除后不再触发, 也无法再次启动或恢复.
func (w *wrapper) Clear() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.clearLocked()
}

// transitLocked 执行状态迁移, 不允许时返回 false.
func (w *wrapper) transitLocked(t trigger) bool {
	if err := w.lc.fire(t); err != nil {
		w.logger.DebugFields("transition ignored", lfdState(w.lc.state()), lfdTrigger(t))
		return false
	}
	return true
}

// startLocked 首次启动. 已启动过时无操作.
func (w *wrapper) startLocked(h Handler, timeout time.Duration, args []any) error {
	if !w.transitLocked(triggerStart) {
		return nil
	}
	w.handler = h
	w.timeout = timeout
	w.args = append([]any(nil), args...)
	w.lastFireAt = w.ts.Now()

	var err error
	if period := w.periodOf(); period > 0 {
		err = w.scheduleLocked(period, period)
	} else {
		err = w.scheduleLocked(timeout, 0)
	}
	if err != nil {
		return err
	}
	w.logger.DebugFields("started", lfdTimerId(w.handle), lfdDelay(timeout))
	return nil
}

// scheduleLocked 启动底层定时器并以新ID重新登记.
// 底层定时器系统拒绝调度时, 定时器被清除并返回 ErrTimerSystemStopped.
func (w *wrapper) scheduleLocked(delay, period time.Duration) error {
	prev := w.handle
	w.handle = w.ts.StartTimer(delay, period, nil, w.fire)
	if prev != timersys.TimerIdNone {
		w.unregister(prev)
	}
	if w.handle == timersys.TimerIdNone {
		w.logger.ErrorFields("timer system refused timer", lfdPrevTimerId(prev))
		_ = w.lc.fire(triggerClear)
		return ErrTimerSystemStopped
	}
	w.register(w.handle)
	return nil
}

// pauseLocked 暂停. 登记项保留, 以便批量恢复.
func (w *wrapper) pauseLocked() bool {
	if !w.transitLocked(triggerPause) {
		return false
	}
	w.pauseAt = w.ts.Now()
	w.ts.StopTimer(w.handle)
	w.logger.DebugFields("paused", lfdTimerId(w.handle))
	return true
}

// resumeLocked 恢复, 按暂停前已经过的时间计算剩余延迟.
func (w *wrapper) resumeLocked(args []any) error {
	if !w.transitLocked(triggerResume) {
		return nil
	}
	if len(args) > 0 {
		w.args = append([]any(nil), args...)
	}

	span := w.periodOf()
	if span <= 0 {
		span = w.timeout
	}
	remaining := span - w.pauseAt.Sub(w.lastFireAt)
	if remaining < 0 {
		remaining = 0
	}

	// 以剩余时间反推周期起点, 多次暂停恢复也不会丢失已经过的时间.
	w.lastFireAt = w.ts.Now().Add(remaining - span)

	prev := w.handle
	if err := w.scheduleLocked(remaining, w.periodOf()); err != nil {
		return err
	}
	w.logger.DebugFields("resumed", lfdTimerId(w.handle), lfdPrevTimerId(prev), lfdRemaining(remaining))
	return nil
}

// clearLocked 清除.
func (w *wrapper) clearLocked() bool {
	if !w.transitLocked(triggerClear) {
		return false
	}
	w.ts.StopTimer(w.handle)
	w.unregister(w.handle)
	w.logger.DebugFields("cleared", lfdTimerId(w.handle))
	return true
}

// updateLocked 替换回调与周期, 并通过暂停再恢复使其作用于当前调度.
func (w *wrapper) updateLocked(h Handler, opts *updateOptions) error {
	if h != nil {
		w.handler = h
	}
	if opts.hasTimeout {
		w.timeout = opts.timeout
	}
	w.pauseLocked()
	return w.resumeLocked(nil)
}

// beginFireLocked 判断 tid 的触发是否有效. 暂停或清除后残留的触发被丢弃.
func (w *wrapper) beginFireLocked(tid timersys.TimerId) bool {
	return tid == w.handle && w.lc.state() == StateArmed
}

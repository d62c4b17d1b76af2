package gtimer

import (
	"time"

	"github.com/godyy/gtimer/timersys"
	pkgerrors "github.com/pkg/errors"
)

// Interval 周期定时器.
// 在底层周期定时器之上提供暂停、恢复、更新、执行计数以及最大执行次数策略.
type Interval struct {
	wrapper
	s     *Scheduler      // 所属 Scheduler.
	opts  intervalOptions // 配置项.
	count int             // 执行次数.
}

// NewInterval 构造 Interval.
func (s *Scheduler) NewInterval(options ...IntervalOption) *Interval {
	t := &Interval{
		s: s,
		opts: intervalOptions{
			maxClear: true,
		},
	}
	for _, opt := range options {
		opt(&t.opts)
	}

	t.init(s.ts, s.logger.Named("Interval"), t.period, t.onTimer,
		func(tid timersys.TimerId) {
			s.intervals.Register(tid, t)
		},
		func(tid timersys.TimerId) {
			s.intervals.compareAndUnregister(tid, t)
		},
	)

	return t
}

// Start 启动定时器, 每隔 period 以 args 调用 handler.
// 同一 Interval 只能启动一次, 此后的调用直接返回当前定时器ID. 更换回调或周期请使用 Update.
func (t *Interval) Start(handler any, period time.Duration, args ...any) (timersys.TimerId, error) {
	h, err := validateHandler(handler)
	if err != nil {
		return timersys.TimerIdNone, pkgerrors.WithMessage(err, "start interval")
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	if err := t.startLocked(h, period, args); err != nil {
		return timersys.TimerIdNone, pkgerrors.WithMessage(err, "start interval")
	}
	return t.handle, nil
}

// Update 更新回调或周期, 并立即作用于当前调度.
func (t *Interval) Update(options ...UpdateOption) error {
	var opts updateOptions
	for _, opt := range options {
		opt(&opts)
	}

	var h Handler
	if opts.hasHandler {
		var err error
		if h, err = validateHandler(opts.handler); err != nil {
			return pkgerrors.WithMessage(err, "update interval")
		}
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	if err := t.updateLocked(h, &opts); err != nil {
		return pkgerrors.WithMessage(err, "update interval")
	}
	return nil
}

// Count 执行次数.
func (t *Interval) Count() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.count
}

// Period 请求的周期.
func (t *Interval) Period() time.Duration {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.timeout
}

// MaxCount 最大执行次数, 0 表示不限.
func (t *Interval) MaxCount() int {
	return t.opts.maxCount
}

// MaxClear 达到最大执行次数后是否清除.
func (t *Interval) MaxClear() bool {
	return t.opts.maxClear
}

// period 实际调度周期, 不小于配置的最小周期.
func (t *Interval) period() time.Duration {
	if t.timeout < t.s.cfg.MinInterval {
		return t.s.cfg.MinInterval
	}
	return t.timeout
}

// onTimer 底层定时器回调.
func (t *Interval) onTimer(args *timersys.TimerArgs) {
	t.mtx.Lock()
	if !t.beginFireLocked(args.TID) {
		t.mtx.Unlock()
		return
	}
	t.count++
	count := t.count
	t.lastFireAt = t.ts.Now()
	h, params := t.handler, append([]any(nil), t.args...)
	t.mtx.Unlock()

	h(params...)

	if t.opts.maxCount <= 0 || count != t.opts.maxCount {
		return
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.logger.DebugFields("max count reached", lfdTimerId(args.TID), lfdCount(count))
	if t.opts.maxClear {
		t.clearLocked()
	} else {
		t.pauseLocked()
	}
}

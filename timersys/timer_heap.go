package timersys

import (
	"sync"
	"time"
)

// TimerHeap 最小堆定时器系统.
// 所有回调都在 TimerHeap 的主循环 goroutine 中依次执行.
type TimerHeap struct {
	mtx      sync.Mutex    // 互斥锁.
	sysTimer *time.Timer   // 系统定时器.
	queue    *timerQueue   // 定时器队列.
	stopped  bool          // 是否已停止.
	cStopped chan struct{} // 已停止信号.
}

// NewTimerHeap 构造 TimerHeap.
func NewTimerHeap() *TimerHeap {
	th := &TimerHeap{
		sysTimer: time.NewTimer(0),
		queue:    newTimerQueue(),
		stopped:  false,
		cStopped: make(chan struct{}),
	}

	go th.loop()

	return th
}

// Now 当前时间.
func (th *TimerHeap) Now() time.Time {
	return time.Now()
}

// Len 未到期的定时器数量.
func (th *TimerHeap) Len() int {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return 0
	}
	return th.queue.len()
}

// resetSysTimer 重置系统定时器.
func (th *TimerHeap) resetSysTimer(expireAt int64) {
	th.stopSysTimer()
	th.sysTimer.Reset(time.Duration(expireAt - time.Now().UnixNano()))
}

// stopSysTimer 停止系统定时器.
func (th *TimerHeap) stopSysTimer() {
	if !th.sysTimer.Stop() {
		select {
		case <-th.sysTimer.C:
		default:
		}
	}
}

// Stop 停止 TimerHeap.
func (th *TimerHeap) Stop() {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return
	}

	th.stopSysTimer()
	th.queue = nil
	close(th.cStopped)
	th.stopped = true
}

// StartTimer 启动定时器.
func (th *TimerHeap) StartTimer(delay, period time.Duration, args any, cb TimerFunc) TimerId {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	// 检查是否已停止.
	if th.stopped {
		return TimerIdNone
	}

	// 创建并添加定时器.
	t := th.queue.newTimer(time.Now().UnixNano(), delay, period, args, cb)
	if th.queue.add(t) {
		th.resetSysTimer(t.expireAt)
	}

	return t.id
}

// StopTimer 停止定时器.
func (th *TimerHeap) StopTimer(tid TimerId) {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	// 检查是否已停止.
	if th.stopped {
		return
	}

	exists, top := th.queue.remove(tid)
	if !exists || !top {
		return
	}

	// 更新系统定时器.
	if expireAt, ok := th.queue.nextExpireAt(); ok {
		th.resetSysTimer(expireAt)
	} else {
		th.stopSysTimer()
	}
}

// update 触发所有已到期的定时器.
func (th *TimerHeap) update() {
	var (
		cb   TimerFunc
		args TimerArgs
		ok   bool
	)
	for {
		now := time.Now().UnixNano()

		// 取出堆顶到期定时器.
		th.mtx.Lock()
		if th.stopped {
			th.mtx.Unlock()
			return
		}
		cb, _, ok = th.queue.popExpired(now, &args)
		if !ok {
			if expireAt, has := th.queue.nextExpireAt(); has {
				th.resetSysTimer(expireAt)
			}
			th.mtx.Unlock()
			return
		}
		th.mtx.Unlock()

		// 调用回调函数.
		cb(&args)
	}
}

// loop 主循环逻辑.
func (th *TimerHeap) loop() {
	for {
		select {
		case <-th.sysTimer.C:
			th.update()
		case <-th.cStopped:
			return
		}
	}
}

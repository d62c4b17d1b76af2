package timersys

import (
	"sync"
	"time"
)

// ManualTimerHeap 手动推进时间的定时器系统.
// 时间只在调用 Advance 时前进，到期的回调在调用 Advance 的 goroutine 中同步执行，
// 用于获得确定性的定时器行为.
type ManualTimerHeap struct {
	mtx   sync.Mutex  // 互斥锁.
	now   int64       // 当前虚拟时间.
	queue *timerQueue // 定时器队列.
}

// NewManualTimerHeap 构造 ManualTimerHeap, 虚拟时间从 start 开始.
func NewManualTimerHeap(start time.Time) *ManualTimerHeap {
	return &ManualTimerHeap{
		now:   start.UnixNano(),
		queue: newTimerQueue(),
	}
}

// Now 当前虚拟时间.
func (m *ManualTimerHeap) Now() time.Time {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return time.Unix(0, m.now)
}

// Len 未到期的定时器数量.
func (m *ManualTimerHeap) Len() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.queue.len()
}

// StartTimer 启动定时器.
func (m *ManualTimerHeap) StartTimer(delay, period time.Duration, args any, cb TimerFunc) TimerId {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	t := m.queue.newTimer(m.now, delay, period, args, cb)
	m.queue.add(t)
	return t.id
}

// StopTimer 停止定时器.
func (m *ManualTimerHeap) StopTimer(tid TimerId) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.queue.remove(tid)
}

// Advance 将虚拟时间推进 d.
// 期间到期的定时器按到期时间依次触发, 触发时 Now 返回该定时器的到期时间.
// 回调中新启动的定时器若在 d 内到期，同样会被触发.
func (m *ManualTimerHeap) Advance(d time.Duration) {
	if d < 0 {
		panic("advance duration must >= 0")
	}

	var args TimerArgs

	m.mtx.Lock()
	end := m.now + int64(d)
	for {
		cb, expireAt, ok := m.queue.popExpired(end, &args)
		if !ok {
			break
		}
		if expireAt > m.now {
			m.now = expireAt
		}
		m.mtx.Unlock()

		cb(&args)

		m.mtx.Lock()
	}
	m.now = end
	m.mtx.Unlock()
}

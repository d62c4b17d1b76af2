// Package timersys 提供底层定时器系统.
// 上层的 Interval/Timeout 包装器只依赖 TimerSystem 接口，生产环境使用 TimerHeap，
// 测试环境使用可手动推进时间的 ManualTimerHeap.
package timersys

import "time"

// TimerSystem 定时器系统.
type TimerSystem interface {
	// Now 定时器系统当前时间.
	Now() time.Time

	// StartTimer 启动定时器.
	// 定时器在 delay 后首次触发, period > 0 时此后每隔 period 触发一次.
	StartTimer(delay, period time.Duration, args any, f TimerFunc) TimerId

	// StopTimer 停止定时器.
	StopTimer(tid TimerId)
}

// TimerId 定时器ID.
type TimerId = uint64

// TimerIdNone 定时器ID为0.
const TimerIdNone = 0

// TimerArgs 定时器参数.
type TimerArgs struct {
	TID  TimerId // 定时器ID.
	Args any     // 参数.
}

// TimerFunc 定时器回调函数.
type TimerFunc func(*TimerArgs)

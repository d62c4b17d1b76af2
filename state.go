package gtimer

import (
	"github.com/qmuntal/stateless"
)

// State 定时器包装器的生命周期状态.
type State int8

const (
	StateIdle    State = iota // 未启动.
	StateArmed                // 已调度, 等待触发.
	StatePaused               // 已暂停.
	StateCleared              // 已清除, 终态.
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StatePaused:
		return "paused"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// trigger 状态迁移触发器.
type trigger int8

const (
	triggerStart trigger = iota
	triggerPause
	triggerResume
	triggerClear
)

func (t trigger) String() string {
	switch t {
	case triggerStart:
		return "start"
	case triggerPause:
		return "pause"
	case triggerResume:
		return "resume"
	case triggerClear:
		return "clear"
	default:
		return "unknown"
	}
}

// lifecycle 包装器状态机. 不允许的迁移由状态机直接拒绝.
type lifecycle struct {
	sm *stateless.StateMachine
}

func newLifecycle() *lifecycle {
	sm := stateless.NewStateMachine(StateIdle)

	sm.Configure(StateIdle).
		Permit(triggerStart, StateArmed)

	sm.Configure(StateArmed).
		Permit(triggerPause, StatePaused).
		Permit(triggerClear, StateCleared)

	sm.Configure(StatePaused).
		Permit(triggerResume, StateArmed).
		Permit(triggerClear, StateCleared)

	sm.Configure(StateCleared)

	return &lifecycle{sm: sm}
}

// state 当前状态.
func (l *lifecycle) state() State {
	return l.sm.MustState().(State)
}

// can 是否允许 t 触发的迁移.
func (l *lifecycle) can(t trigger) bool {
	ok, err := l.sm.CanFire(t)
	return err == nil && ok
}

// fire 执行 t 触发的迁移, 不允许时返回错误.
func (l *lifecycle) fire(t trigger) error {
	return l.sm.Fire(t)
}

package gtimer

import (
	"errors"
	"fmt"
)

// ErrMissingHandler 缺少定时器回调.
var ErrMissingHandler = errors.New("timer missing necessary parameters - handler")

// ErrUnsafeStringHandler 字符串回调不安全, 不予执行.
var ErrUnsafeStringHandler = errors.New("unsafe string handler")

// ErrInvalidHandlerType 回调类型错误.
var ErrInvalidHandlerType = errors.New("invalid handler type")

// ErrTimerSystemStopped 底层定时器系统已停止, 拒绝调度.
var ErrTimerSystemStopped = errors.New("timer system stopped")

// InvalidHandlerTypeError 回调类型错误, 记录实际类型.
type InvalidHandlerTypeError struct {
	Type string // 回调的实际类型.
}

func (e *InvalidHandlerTypeError) Error() string {
	return fmt.Sprintf("timer handler must be func not %s", e.Type)
}

// Is 匹配 ErrInvalidHandlerType 以及类型相同的 InvalidHandlerTypeError.
func (e *InvalidHandlerTypeError) Is(target error) bool {
	if target == ErrInvalidHandlerType {
		return true
	}
	t, ok := target.(*InvalidHandlerTypeError)
	return ok && t.Type == e.Type
}

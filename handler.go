package gtimer

import (
	"reflect"
)

// Handler 定时器回调. args 为启动或恢复定时器时传入的参数.
type Handler func(args ...any)

// validateHandler 校验回调并统一转换为 Handler.
// 支持 Handler、func(...any) 以及 func().
func validateHandler(handler any) (Handler, error) {
	switch h := handler.(type) {
	case nil:
		return nil, ErrMissingHandler
	case string:
		return nil, ErrUnsafeStringHandler
	case Handler:
		if h == nil {
			return nil, ErrMissingHandler
		}
		return h, nil
	case func(...any):
		if h == nil {
			return nil, ErrMissingHandler
		}
		return h, nil
	case func():
		if h == nil {
			return nil, ErrMissingHandler
		}
		return func(...any) { h() }, nil
	default:
		return nil, &InvalidHandlerTypeError{Type: reflect.TypeOf(handler).String()}
	}
}

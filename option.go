package gtimer

import (
	"time"

	"github.com/godyy/glog"
)

// Option Scheduler 选项.
type Option func(*Scheduler)

// WithLogger 日志工具选项.
func WithLogger(logger glog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger.Named("gtimer")
	}
}

// intervalOptions Interval 配置项.
type intervalOptions struct {
	maxCount int  // 最大执行次数, 0 表示不限.
	maxClear bool // 达到最大执行次数后清除, 否则暂停.
}

// IntervalOption Interval 选项.
type IntervalOption func(*intervalOptions)

// WithMaxCount 定时器执行的最大次数. n <= 0 表示不限.
func WithMaxCount(n int) IntervalOption {
	return func(opts *intervalOptions) {
		if n < 0 {
			n = 0
		}
		opts.maxCount = n
	}
}

// WithMaxClear 达到最大执行次数后是否清除定时器, 不清除则暂停. 默认清除.
func WithMaxClear(clear bool) IntervalOption {
	return func(opts *intervalOptions) {
		opts.maxClear = clear
	}
}

// timeoutOptions Timeout 配置项. 目前没有可配置项, 与 Interval 保持相同的构造形式.
type timeoutOptions struct{}

// TimeoutOption Timeout 选项.
type TimeoutOption func(*timeoutOptions)

// updateOptions Update 更新项.
type updateOptions struct {
	handler    any
	hasHandler bool
	timeout    time.Duration
	hasTimeout bool
}

// UpdateOption Update 选项.
type UpdateOption func(*updateOptions)

// WithHandler 更新回调.
func WithHandler(handler any) UpdateOption {
	return func(opts *updateOptions) {
		opts.handler = handler
		opts.hasHandler = true
	}
}

// WithTimeout 更新周期或延迟.
func WithTimeout(timeout time.Duration) UpdateOption {
	return func(opts *updateOptions) {
		opts.timeout = timeout
		opts.hasTimeout = true
	}
}

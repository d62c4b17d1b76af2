package gtimer

import (
	"time"

	"github.com/godyy/gtimer/timersys"
	pkgerrors "github.com/pkg/errors"
)

// Timeout 一次性定时器.
// 在底层一次性定时器之上提供暂停、恢复与更新, 触发后自动清除.
type Timeout struct {
	wrapper
	opts timeoutOptions // 配置项.
}

// NewTimeout 构造 Timeout.
func (s *Scheduler) NewTimeout(options ...TimeoutOption) *Timeout {
	t := &Timeout{}
	for _, opt := range options {
		opt(&t.opts)
	}

	t.init(s.ts, s.logger.Named("Timeout"), func() time.Duration { return 0 }, t.onTimer,
		func(tid timersys.TimerId) {
			s.timeouts.Register(tid, t)
		},
		func(tid timersys.TimerId) {
			s.timeouts.compareAndUnregister(tid, t)
		},
	)

	return t
}

// Start 启动定时器, delay 后以 args 调用 handler 一次.
// 同一 Timeout 只能启动一次, 此后的调用直接返回当前定时器ID.
func (t *Timeout) Start(handler any, delay time.Duration, args ...any) (timersys.TimerId, error) {
	h, err := validateHandler(handler)
	if err != nil {
		return timersys.TimerIdNone, pkgerrors.WithMessage(err, "start timeout")
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	if err := t.startLocked(h, delay, args); err != nil {
		return timersys.TimerIdNone, pkgerrors.WithMessage(err, "start timeout")
	}
	return t.handle, nil
}

// Update 更新回调或延迟, 并立即作用于当前调度.
func (t *Timeout) Update(options ...UpdateOption) error {
	var opts updateOptions
	for _, opt := range options {
		opt(&opts)
	}

	var h Handler
	if opts.hasHandler {
		var err error
		if h, err = validateHandler(opts.handler); err != nil {
			return pkgerrors.WithMessage(err, "update timeout")
		}
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	if err := t.updateLocked(h, &opts); err != nil {
		return pkgerrors.WithMessage(err, "update timeout")
	}
	return nil
}

// Delay 请求的延迟.
func (t *Timeout) Delay() time.Duration {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.timeout
}

// onTimer 底层定时器回调.
func (t *Timeout) onTimer(args *timersys.TimerArgs) {
	t.mtx.Lock()
	if !t.beginFireLocked(args.TID) {
		t.mtx.Unlock()
		return
	}
	h, params := t.handler, append([]any(nil), t.args...)
	t.mtx.Unlock()

	h(params...)

	t.Clear()
}

// Package gtimer 为底层定时器系统提供可暂停、恢复、更新的定时器包装器.
//
// Interval 为周期定时器, Timeout 为一次性定时器. 二者均由 Scheduler 构造, 并登记在
// Scheduler 持有的 Registry 中, 以便批量清除、暂停和恢复.
package gtimer

import (
	"time"

	"github.com/godyy/glog"
	"github.com/godyy/gtimer/timersys"
)

// Scheduler 定时器包装器的构造者和持有者.
type Scheduler struct {
	cfg       *Config              // 配置.
	ts        timersys.TimerSystem // 底层定时器系统.
	intervals *Registry[*Interval] // 周期定时器登记表.
	timeouts  *Registry[*Timeout]  // 一次性定时器登记表.
	logger    glog.Logger          // 日志工具.
}

// CreateScheduler 创建 Scheduler.
func CreateScheduler(cfg *Config, options ...Option) (*Scheduler, error) {
	if err := cfg.init(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		cfg:       cfg,
		ts:        cfg.TimerSystem,
		intervals: NewRegistry[*Interval](),
		timeouts:  NewRegistry[*Timeout](),
	}

	// 选项
	for _, opt := range options {
		opt(s)
	}

	// 初始化日志工具.
	if s.logger == nil {
		s.logger = createStdLogger(cfg.logLevel())
	}

	return s, nil
}

// TimerSystem 底层定时器系统.
func (s *Scheduler) TimerSystem() timersys.TimerSystem {
	return s.ts
}

// Now 底层定时器系统的当前时间.
func (s *Scheduler) Now() time.Time {
	return s.ts.Now()
}

// Intervals 周期定时器登记表.
func (s *Scheduler) Intervals() *Registry[*Interval] {
	return s.intervals
}

// Timeouts 一次性定时器登记表.
func (s *Scheduler) Timeouts() *Registry[*Timeout] {
	return s.timeouts
}

// ClearAll 清除所有定时器.
func (s *Scheduler) ClearAll() {
	s.intervals.ClearAll()
	s.timeouts.ClearAll()
}

// PauseAll 暂停所有定时器.
func (s *Scheduler) PauseAll() {
	s.intervals.PauseAll()
	s.timeouts.PauseAll()
}

// ResumeAll 恢复所有已暂停的定时器.
func (s *Scheduler) ResumeAll() {
	s.intervals.ResumeAll()
	s.timeouts.ResumeAll()
}

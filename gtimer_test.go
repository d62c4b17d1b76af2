package gtimer

import (
	"testing"
	"time"

	"github.com/godyy/glog"
	"github.com/godyy/gtimer/timersys"
)

// recorder 记录回调的调用.
type recorder struct {
	calls [][]any
}

func (r *recorder) handle(args ...any) {
	r.calls = append(r.calls, args)
}

func (r *recorder) times() int {
	return len(r.calls)
}

func (r *recorder) last() []any {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func newTestScheduler(t *testing.T) (*Scheduler, *timersys.ManualTimerHeap) {
	t.Helper()

	logger := glog.NewLogger(&glog.Config{
		Level:        glog.WarnLevel,
		EnableCaller: true,
		CallerSkip:   0,
		Development:  true,
		Cores:        []glog.CoreConfig{glog.NewStdCoreConfig()},
	})

	th := timersys.NewManualTimerHeap(time.Unix(0, 0))
	s, err := CreateScheduler(&Config{TimerSystem: th}, WithLogger(logger))
	if err != nil {
		t.Fatalf("create scheduler: %v", err)
	}
	t.Cleanup(s.ClearAll)
	return s, th
}

func TestCreateScheduler(t *testing.T) {
	if _, err := CreateScheduler(nil); err == nil {
		t.Fatal("nil config should fail")
	}

	if _, err := CreateScheduler(&Config{}); err == nil {
		t.Fatal("config without TimerSystem should fail")
	}

	th := timersys.NewManualTimerHeap(time.Unix(0, 0))
	s, err := CreateScheduler(&Config{TimerSystem: th, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("create scheduler: %v", err)
	}
	if s.TimerSystem() != th {
		t.Fatal("TimerSystem mismatch")
	}
	if !s.Now().Equal(time.Unix(0, 0)) {
		t.Fatalf("Now mismatch: %v", s.Now())
	}
	if s.cfg.MinInterval != DefaultMinInterval {
		t.Fatalf("Expected default MinInterval %v, got %v", DefaultMinInterval, s.cfg.MinInterval)
	}
}

func TestSchedulerBulk(t *testing.T) {
	s, th := newTestScheduler(t)

	var r1, r2 recorder
	interval := s.NewInterval()
	if _, err := interval.Start(r1.handle, time.Second); err != nil {
		t.Fatal(err)
	}
	timeout := s.NewTimeout()
	if _, err := timeout.Start(r2.handle, 1500*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	th.Advance(time.Second)
	s.PauseAll()
	if !interval.Paused() || !timeout.Paused() {
		t.Fatal("PauseAll should pause every timer")
	}

	th.Advance(10 * time.Second)
	if r1.times() != 1 || r2.times() != 0 {
		t.Fatalf("paused timers fired: %d, %d", r1.times(), r2.times())
	}

	s.ResumeAll()
	th.Advance(500 * time.Millisecond)
	if r2.times() != 1 {
		t.Fatalf("Expected timeout to fire once after resume, got %d", r2.times())
	}
	th.Advance(500 * time.Millisecond)
	if r1.times() != 2 {
		t.Fatalf("Expected interval to fire twice, got %d", r1.times())
	}

	s.ClearAll()
	th.Advance(10 * time.Second)
	if r1.times() != 2 {
		t.Fatalf("cleared interval fired: %d", r1.times())
	}
	if s.Intervals().Len() != 0 || s.Timeouts().Len() != 0 {
		t.Fatalf("registries should be empty, got %d, %d", s.Intervals().Len(), s.Timeouts().Len())
	}
	if th.Len() != 0 {
		t.Fatalf("Expected no pending native timers, got %d", th.Len())
	}
}

package timersys

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimerHeapStartTimer(t *testing.T) {
	th := NewTimerHeap()
	defer th.Stop()

	var wg sync.WaitGroup
	wg.Add(1)

	startTime := time.Now()
	var triggerTime time.Time
	tid := th.StartTimer(100*time.Millisecond, 0, "test data", func(args *TimerArgs) {
		triggerTime = time.Now()
		if args.Args != "test data" {
			t.Errorf("Expected data 'test data', got %v", args.Args)
		}
		wg.Done()
	})
	if tid == TimerIdNone {
		t.Fatal("Timer ID should not be TimerIdNone")
	}

	wg.Wait()

	if elapsed := triggerTime.Sub(startTime); elapsed < 100*time.Millisecond {
		t.Errorf("timer triggered too early: %v", elapsed)
	}
}

func TestTimerHeapPeriodic(t *testing.T) {
	th := NewTimerHeap()
	defer th.Stop()

	var wg sync.WaitGroup
	count := new(atomic.Int64)
	expectedCount := 3
	wg.Add(expectedCount)

	tid := th.StartTimer(20*time.Millisecond, 20*time.Millisecond, nil, func(args *TimerArgs) {
		if n := count.Add(1); n <= int64(expectedCount) {
			wg.Done()
			if n == int64(expectedCount) {
				th.StopTimer(args.TID)
			}
		}
	})

	wg.Wait()

	time.Sleep(100 * time.Millisecond)
	if n := count.Load(); n != int64(expectedCount) {
		t.Errorf("Expected %d triggers, got %d", expectedCount, n)
	}
	if th.Len() != 0 {
		t.Errorf("timer %d should have been removed", tid)
	}
}

func TestTimerHeapStopTimer(t *testing.T) {
	th := NewTimerHeap()
	defer th.Stop()

	triggered := new(atomic.Bool)
	tid := th.StartTimer(100*time.Millisecond, 0, nil, func(*TimerArgs) {
		triggered.Store(true)
	})

	th.StopTimer(tid)

	time.Sleep(200 * time.Millisecond)
	if triggered.Load() {
		t.Error("Timer should not have been triggered after stop")
	}
}

func TestTimerHeapStop(t *testing.T) {
	th := NewTimerHeap()
	th.StartTimer(time.Hour, 0, nil, func(*TimerArgs) {})

	th.Stop()
	th.Stop()

	if tid := th.StartTimer(time.Second, 0, nil, func(*TimerArgs) {}); tid != TimerIdNone {
		t.Errorf("Expected TimerIdNone after stop, got %d", tid)
	}
	th.StopTimer(1)
	if th.Len() != 0 {
		t.Errorf("Expected 0 timers after stop, got %d", th.Len())
	}
}

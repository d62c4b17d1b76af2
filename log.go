package gtimer

import (
	"time"

	"github.com/godyy/glog"
	"go.uber.org/zap"
)

// createStdLogger 创建面向标准输出的 logger.
func createStdLogger(level glog.Level) glog.Logger {
	return glog.NewLogger(&glog.Config{
		Level:        level,
		EnableCaller: true,
		CallerSkip:   0,
		Development:  true,
		Cores:        []glog.CoreConfig{glog.NewStdCoreConfig()},
	}).Named("gtimer")
}

func lfdTimerId(tid uint64) zap.Field {
	return zap.Uint64("timerId", tid)
}

func lfdPrevTimerId(tid uint64) zap.Field {
	return zap.Uint64("prevTimerId", tid)
}

func lfdDelay(d time.Duration) zap.Field {
	return zap.Duration("delay", d)
}

func lfdRemaining(d time.Duration) zap.Field {
	return zap.Duration("remaining", d)
}

func lfdCount(count int) zap.Field {
	return zap.Int("count", count)
}

func lfdState(s State) zap.Field {
	return zap.Stringer("state", s)
}

func lfdTrigger(t trigger) zap.Field {
	return zap.Stringer("trigger", t)
}

package gtimer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godyy/glog"
	"github.com/godyy/gtimer/timersys"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultMinInterval 默认最小周期.
const DefaultMinInterval = time.Millisecond

// Config Scheduler 配置.
type Config struct {
	// TimerSystem 底层定时器系统.
	TimerSystem timersys.TimerSystem `yaml:"-"`

	// MinInterval Interval 的最小周期, 小于此值的周期按此值调度.
	MinInterval time.Duration `yaml:"min_interval"`

	// LogLevel 默认日志工具的日志级别: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ParseConfig 从 YAML 数据解析配置. TimerSystem 需由调用方另行指定.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, pkgerrors.WithMessage(err, "parse config")
	}
	return cfg, nil
}

func (c *Config) init() error {
	if c == nil {
		return errors.New("config nil")
	}

	if c.TimerSystem == nil {
		return errors.New("Config.TimerSystem not specified")
	}

	if c.MinInterval < 0 {
		return errors.New("Config.MinInterval must >= 0")
	}

	if c.MinInterval == 0 {
		c.MinInterval = DefaultMinInterval
	}

	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// logLevel 默认日志工具的日志级别.
func (c *Config) logLevel() glog.Level {
	level, _ := parseLogLevel(c.LogLevel)
	return level
}

func parseLogLevel(s string) (glog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return glog.DebugLevel, nil
	case "", "info":
		return glog.InfoLevel, nil
	case "warn":
		return glog.WarnLevel, nil
	case "error":
		return glog.ErrorLevel, nil
	default:
		return glog.InfoLevel, fmt.Errorf("Config.LogLevel %q invalid", s)
	}
}

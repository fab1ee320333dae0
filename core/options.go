package core

import (
	"fmt"
	"runtime"
)

// Schedule selects how a parallel loop splits its iteration space.
type Schedule int

const (
	// ScheduleStatic hands each worker one contiguous chunk of roughly n/workers
	// iterations, decided before any worker starts.
	ScheduleStatic Schedule = iota

	// ScheduleDynamic feeds fixed-size chunks to whichever worker is free.
	ScheduleDynamic
)

// String returns the schedule name.
func (s Schedule) String() string {
	switch s {
	case ScheduleStatic:
		return "static"
	case ScheduleDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// ParseSchedule maps a schedule name back to its value.
func ParseSchedule(name string) (Schedule, error) {
	switch name {
	case "static":
		return ScheduleStatic, nil
	case "dynamic":
		return ScheduleDynamic, nil
	default:
		return 0, fmt.Errorf("core: unknown schedule %q", name)
	}
}

// RunConfig defines common settings for a parallel region.
type RunConfig struct {
	Workers   int
	Schedule  Schedule
	ChunkSize int // dynamic schedule only
}

// RunOption mutates a RunConfig.
type RunOption func(*RunConfig)

// DefaultRunConfig returns a static schedule over GOMAXPROCS workers.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Workers:   runtime.GOMAXPROCS(0),
		Schedule:  ScheduleStatic,
		ChunkSize: 1024,
	}
}

// WithWorkers sets the number of workers spawned per parallel region.
func WithWorkers(workers int) RunOption {
	return func(cfg *RunConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithSchedule sets the loop partitioning strategy.
func WithSchedule(schedule Schedule) RunOption {
	return func(cfg *RunConfig) {
		if schedule == ScheduleStatic || schedule == ScheduleDynamic {
			cfg.Schedule = schedule
		}
	}
}

// WithChunkSize sets the number of iterations handed out per dynamic chunk.
func WithChunkSize(chunk int) RunOption {
	return func(cfg *RunConfig) {
		if chunk > 0 {
			cfg.ChunkSize = chunk
		}
	}
}

// ApplyRunOptions applies zero or more options to the default config.
func ApplyRunOptions(opts ...RunOption) RunConfig {
	cfg := DefaultRunConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-parallel/core"
)

// ErrInvalidConfig reports a demo configuration that cannot be run.
var ErrInvalidConfig = errors.New("bench: invalid config")

// VectorConfig configures the data-parallel demo.
type VectorConfig struct {
	N int // interval count
}

// DefaultVectorConfig returns n = 1e9.
func DefaultVectorConfig() VectorConfig {
	return VectorConfig{N: 1_000_000_000}
}

// Validate checks that the config can be run.
func (c VectorConfig) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("%w: vector n=%d", ErrInvalidConfig, c.N)
	}
	return nil
}

// ThreadConfig configures the shared-memory demo.
type ThreadConfig struct {
	N          int // interval count
	SortLen    int
	SortMax    int // sort values are drawn from [0, SortMax)
	MatrixSize int // square matrices MatrixSize×MatrixSize
	MatrixMax  int // matrix values are drawn from [0, MatrixMax)
	Workers    int
	Schedule   core.Schedule
	ChunkSize  int   // dynamic schedule only
	Seed       int64 // 0 seeds from the wall clock
}

// DefaultThreadConfig returns the lab constants: n = 1e6, 5000 values below
// 10000, 200×200 matrices with values below 10, four workers.
func DefaultThreadConfig() ThreadConfig {
	return ThreadConfig{
		N:          1_000_000,
		SortLen:    5000,
		SortMax:    10000,
		MatrixSize: 200,
		MatrixMax:  10,
		Workers:    4,
		Schedule:   core.ScheduleStatic,
		ChunkSize:  core.DefaultRunConfig().ChunkSize,
	}
}

// Validate checks that the config can be run.
func (c ThreadConfig) Validate() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: threads n=%d", ErrInvalidConfig, c.N)
	case c.SortLen < 1 || c.SortMax < 1:
		return fmt.Errorf("%w: sort length %d, max %d", ErrInvalidConfig, c.SortLen, c.SortMax)
	case c.MatrixSize < 1 || c.MatrixMax < 1:
		return fmt.Errorf("%w: matrix size %d, max %d", ErrInvalidConfig, c.MatrixSize, c.MatrixMax)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	case c.Schedule != core.ScheduleStatic && c.Schedule != core.ScheduleDynamic:
		return fmt.Errorf("%w: schedule %v", ErrInvalidConfig, c.Schedule)
	case c.ChunkSize < 1:
		return fmt.Errorf("%w: chunk size %d", ErrInvalidConfig, c.ChunkSize)
	}
	return nil
}

func (c ThreadConfig) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// DistributedConfig configures the message-passing demo.
type DistributedConfig struct {
	Ns    []int // interval counts, swept in order
	Ranks int   // participant count; must match mpirun -np with the mpi tag
}

// DefaultDistributedConfig returns n ∈ {1000, 10000, 100000} on four ranks.
func DefaultDistributedConfig() DistributedConfig {
	return DistributedConfig{
		Ns:    []int{1000, 10000, 100000},
		Ranks: 4,
	}
}

// Validate checks that the config can be run.
func (c DistributedConfig) Validate() error {
	if len(c.Ns) == 0 {
		return fmt.Errorf("%w: no interval counts", ErrInvalidConfig)
	}
	for _, n := range c.Ns {
		if n < 1 {
			return fmt.Errorf("%w: distributed n=%d", ErrInvalidConfig, n)
		}
	}
	if c.Ranks < 1 {
		return fmt.Errorf("%w: ranks=%d", ErrInvalidConfig, c.Ranks)
	}
	return nil
}

// Config bundles the configs of all demos.
type Config struct {
	Vector      VectorConfig
	Threads     ThreadConfig
	Distributed DistributedConfig
}

// DefaultConfig returns the default config of every demo.
func DefaultConfig() Config {
	return Config{
		Vector:      DefaultVectorConfig(),
		Threads:     DefaultThreadConfig(),
		Distributed: DefaultDistributedConfig(),
	}
}

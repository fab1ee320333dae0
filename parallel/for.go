package parallel

import (
	"sync"

	"github.com/cwbudde/algo-parallel/core"
)

// Range is the half-open iteration interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Executor runs body over disjoint chunks that together cover [0, n).
// worker identifies the goroutine running the chunk and is always in
// [0, Workers()).
type Executor interface {
	ForRange(n int, body func(worker, start, end int))
	Workers() int
}

// Pool is a parallel-for executor. Goroutines are spawned per call and
// joined before the call returns; a Pool holds no running goroutines.
type Pool struct {
	cfg core.RunConfig
}

// New creates a pool from the given options.
func New(opts ...core.RunOption) *Pool {
	return &Pool{cfg: core.ApplyRunOptions(opts...)}
}

// Config returns the pool configuration.
func (p *Pool) Config() core.RunConfig {
	return p.cfg
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.cfg.Workers
}

// Split partitions [0, n) into at most parts contiguous ranges whose lengths
// differ by at most one. Empty ranges are never returned.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	ranges := make([]Range, parts)
	for k := range parts {
		ranges[k] = Range{Start: k * n / parts, End: (k + 1) * n / parts}
	}
	return ranges
}

// ForRange runs body over [0, n) using the pool's schedule and blocks until
// every chunk has completed. If body panics, chunks not yet handed out are
// skipped and the first panic value is re-raised on the calling goroutine
// once every spawned goroutine has exited.
func (p *Pool) ForRange(n int, body func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	if p.cfg.Schedule == core.ScheduleDynamic {
		p.forDynamic(n, body)
		return
	}
	p.forStatic(n, body)
}

func (p *Pool) forStatic(n int, body func(worker, start, end int)) {
	ranges := Split(n, p.cfg.Workers)
	if len(ranges) == 1 {
		body(0, ranges[0].Start, ranges[0].End)
		return
	}

	var (
		wg      sync.WaitGroup
		failure panicBox
	)
	for w, r := range ranges {
		wg.Go(func() {
			defer failure.capture(nil)
			body(w, r.Start, r.End)
		})
	}
	wg.Wait()
	failure.repanic()
}

func (p *Pool) forDynamic(n int, body func(worker, start, end int)) {
	chunk := max(p.cfg.ChunkSize, 1)
	workers := min(p.cfg.Workers, (n+chunk-1)/chunk)
	if workers <= 1 {
		body(0, 0, n)
		return
	}

	work := NewBoundedQueue[Range](2 * workers)
	var producer sync.WaitGroup
	producer.Go(func() {
		defer work.Close()
		for start := 0; start < n; start += chunk {
			// A panicking worker closes the queue early.
			if err := work.Put(Range{Start: start, End: min(start+chunk, n)}); err != nil {
				return
			}
		}
	})

	var (
		wg      sync.WaitGroup
		failure panicBox
	)
	for w := range workers {
		wg.Go(func() {
			defer failure.capture(work.Close)
			for {
				r, ok := work.Take()
				if !ok {
					return
				}
				body(w, r.Start, r.End)
			}
		})
	}
	wg.Wait()
	producer.Wait()
	failure.repanic()
}

// panicBox keeps the first panic raised by a worker goroutine.
type panicBox struct {
	mu    sync.Mutex
	set   bool
	value any
}

// capture must be deferred directly. onPanic runs after the value is stored.
func (b *panicBox) capture(onPanic func()) {
	r := recover()
	if r == nil {
		return
	}
	b.mu.Lock()
	if !b.set {
		b.set, b.value = true, r
	}
	b.mu.Unlock()
	if onPanic != nil {
		onPanic()
	}
}

func (b *panicBox) repanic() {
	if b.set {
		panic(b.value)
	}
}

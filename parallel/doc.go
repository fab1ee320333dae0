// Package parallel provides the shared-memory building blocks used by the
// threaded kernels: a parallel-for pool with static and dynamic schedules,
// per-worker partial reductions, a cyclic barrier, a bounded
// producer/consumer queue and a reader/writer guarded value.
//
// # Usage
//
//	pool := parallel.New(core.WithWorkers(4))
//	sum := pool.MapReduce(n, func(start, end int) float64 {
//		s := 0.0
//		for i := start; i < end; i++ {
//			s += f(i)
//		}
//		return s
//	})
//
// Worker partials are kept in private, cache-line padded slots and combined
// by a single Fold once every worker has returned, so no accumulator is ever
// updated by two goroutines.
package parallel

// Package integrate estimates π = ∫₀¹ 4/(1+x²) dx with three quadrature rules
// and four execution strategies.
//
// Rules:
//
//   - Rectangle: midpoint rule, nodes at (i+½)h for i in [0, n)
//   - Trapezoidal: interior nodes ih for i in [1, n), boundary ½(f(0)+f(1))
//   - Simpson: interior nodes ih weighted 4 (odd i) or 2 (even i), boundary
//     f(0)+f(1), scaled by h/3. An odd n is rounded up to n+1.
//
// Strategies:
//
//   - Serial: one accumulation loop
//   - Vector: four lanes per step with a scalar tail, dispatched at runtime
//     to the best registered backend for the CPU
//   - Threaded: per-worker partial sums folded once on a parallel.Executor
//   - Distributed: indices striped by rank, one sum-reduction to the root
//
// Every strategy shares the same decomposition: a weighted sum over interior
// nodes (PartialSum), a boundary term added exactly once (Boundary) and a
// final scale factor (Scale). Results of different strategies for the same
// rule therefore differ only by floating-point summation order.
//
// # Usage
//
//	pi, err := integrate.Serial(integrate.Simpson, 1_000_000)
//	fmt.Printf("π ≈ %.12f (error %.3g)\n", pi, integrate.ErrorVsPi(pi))
package integrate

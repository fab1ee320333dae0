// Package bench runs the built-in benchmark set: each demo times serial
// baselines against their parallel counterparts and writes one aligned table
// per demo.
//
// Three demos exist:
//
//   - simd: serial vs. data-parallel quadrature
//   - threads: serial vs. multi-threaded quadrature, selection sort and
//     matrix multiplication
//   - mpi: serial vs. distributed quadrature over an interval-count sweep
//
// Sizes, worker counts and seeds come from per-demo config structs; the
// defaults are the classic fixed workload sizes.
package bench

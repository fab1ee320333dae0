// Command parbench runs the built-in serial vs. parallel benchmark set.
//
// Usage:
//
//	parbench [flags] [demo ...]
//
// Without arguments it runs every demo (simd, threads, mpi) with the
// built-in sizes. Flags override sizes, worker counts and seeds only.
//
// Built with -tags mpi, every process of the MPI job runs parbench, so only
// the mpi demo is available:
//
//	mpirun -np 4 ./parbench -ranks 4 mpi
//
// Examples:
//
//	parbench
//	parbench threads
//	parbench -vector-n 100000000 simd
//	parbench -workers 8 -schedule dynamic threads
//	parbench -ranks 2 -sweep 1000,1000000 mpi
//	parbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-parallel/bench"
	"github.com/cwbudde/algo-parallel/core"
)

func main() {
	def := bench.DefaultConfig()

	vectorN := flag.Int("vector-n", def.Vector.N, "interval count of the simd demo")
	threadN := flag.Int("n", def.Threads.N, "interval count of the threads demo")
	sortLen := flag.Int("sort-len", def.Threads.SortLen, "array length of the threads demo sorts")
	matrixSize := flag.Int("matrix-size", def.Threads.MatrixSize, "square matrix size of the threads demo")
	workers := flag.Int("workers", def.Threads.Workers, "worker count of the threads demo")
	schedule := flag.String("schedule", def.Threads.Schedule.String(), "loop schedule of the threads demo: static or dynamic")
	chunk := flag.Int("chunk", def.Threads.ChunkSize, "iterations per chunk with -schedule dynamic")
	seed := flag.Int64("seed", 0, "random seed of the threads demo (0 = wall clock)")
	ranks := flag.Int("ranks", def.Distributed.Ranks, "participant count of the mpi demo")
	sweep := flag.String("sweep", joinInts(def.Distributed.Ns), "comma-separated interval counts of the mpi demo")
	list := flag.Bool("list", false, "list available demos")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: parbench [flags] [demo ...]\n\n")
		fmt.Fprintf(os.Stderr, "Times serial baselines against parallel variants.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs every demo.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  parbench threads\n")
		fmt.Fprintf(os.Stderr, "  parbench -workers 8 -schedule dynamic threads\n")
		fmt.Fprintf(os.Stderr, "  parbench -ranks 2 -sweep 1000,1000000 mpi\n")
		fmt.Fprintf(os.Stderr, "  parbench -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	sched, err := core.ParseSchedule(*schedule)
	if err != nil {
		fatal(err)
	}
	ns, err := parseInts(*sweep)
	if err != nil {
		fatal(err)
	}

	cfg := def
	cfg.Vector.N = *vectorN
	cfg.Threads.N = *threadN
	cfg.Threads.SortLen = *sortLen
	cfg.Threads.MatrixSize = *matrixSize
	cfg.Threads.Workers = *workers
	cfg.Threads.Schedule = sched
	cfg.Threads.ChunkSize = *chunk
	cfg.Threads.Seed = *seed
	cfg.Distributed.Ranks = *ranks
	cfg.Distributed.Ns = ns

	if err := bench.Run(os.Stdout, cfg, flag.Args()...); err != nil {
		fatal(err)
	}
}

func printList() {
	for _, d := range bench.Demos() {
		fmt.Printf("%-8s %s\n", d.Name, d.Description)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid interval count %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

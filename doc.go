// Package percolate is a small toolbox of classic algorithm-course
// building blocks: a generic double-ended queue and a Monte Carlo
// estimator for the percolation threshold of an n×n site grid.
//
// 🚀 What is percolate?
//
//	A compact, dependency-light library that brings together:
//		• Deque[T]: doubly-linked double-ended queue, O(1) at both ends
//		• Percolation: union-find site grid with virtual top/bottom
//		• Stats: repeated-trial threshold estimation with a 95% interval
//
// ✨ Why choose percolate?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – inject your own rand.Rand for reproducible runs
//   - Pure Go – no cgo, single-purpose packages
//
// Under the hood, everything is organized under three subpackages:
//
//	deque/       — generic doubly-linked deque with lazy forward iteration
//	percolation/ — n×n percolation system (open / percolates / open-site count)
//	percstats/   — Monte Carlo driver: mean, stddev, 95% confidence interval
//
// Quick ASCII example:
//
//	    ░ ░ █ ░            █ = open site
//	    ░ █ █ ░            the system percolates once a chain of
//	    ░ █ ░ ░            open sites joins the top row to the
//	    ░ █ ░ ░            bottom row
//
// The cmd/percstats binary wires it all together:
//
//	percstats 200 100
//
//	go get github.com/katalvlaran/percolate
package percolate

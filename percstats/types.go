// Package percstats defines the driver's options, collaborator contract,
// and sentinel errors.
package percstats

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/percolate/percolation"
)

// Sentinel errors for statistics construction.
var (
	// ErrInvalidDimension indicates a non-positive grid dimension.
	ErrInvalidDimension = errors.New("percstats: grid dimension must be positive")
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = errors.New("percstats: trial count must be positive")
)

// confidence95 approximates the 97.5th percentile of the standard normal
// distribution; ±confidence95 stddev/√trials bounds a 95% interval.
const confidence95 = 1.96

// System is the external percolation collaborator driven by the trials.
// Open must be idempotent for already-open sites; Percolates must become
// true after finitely many openings (opening every site spans the grid).
type System interface {
	// Open opens the site at 1-based (row, col); re-opening is a no-op.
	Open(row, col int) error
	// Percolates reports whether open sites connect top row to bottom row.
	Percolates() bool
	// NumberOfOpenSites returns the count of currently open sites.
	NumberOfOpenSites() int
}

// Options configures a simulation run.
//
// Fields:
//   - Rand      — randomness source for site selection. Supply a seeded
//     rand.Rand for reproducible runs; nil falls back to a time-seeded one.
//   - NewSystem — factory for a fresh n×n system per trial; nil falls back
//     to percolation.New.
//
// Example:
//
//	opts := &percstats.Options{Rand: rand.New(rand.NewSource(42))}
//	s, err := percstats.New(100, 50, opts)
type Options struct {
	Rand      *rand.Rand
	NewSystem func(n int) (System, error)
}

// DefaultOptions returns Options with a time-seeded randomness source and
// the percolation.New system factory.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		NewSystem: func(n int) (System, error) {
			return percolation.New(n)
		},
	}
}

// Stats holds the recorded percolation thresholds of a completed run and
// memoizes the derived statistics. Construct with New; immutable afterwards
// apart from the caches.
type Stats struct {
	n          int
	trials     int
	thresholds []float64

	// Memoization caches: each statistic is computed once. Presence flags
	// avoid reserving a sentinel value in the float domain.
	mean       float64
	meanDone   bool
	stddev     float64
	stddevDone bool
}

package percstats

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// New runs trials independent percolation simulations over an n×n grid and
// returns the completed Stats. Each trial opens uniformly random sites
// (drawn with replacement over the full coordinate space) until the system
// percolates, then records the open fraction as that trial's threshold.
//
// opts may be nil; zero fields fall back to DefaultOptions values.
//
// Error Conditions:
//   - ErrInvalidDimension : n ≤ 0.
//   - ErrInvalidTrials    : trials ≤ 0.
//   - Any error surfaced by the system factory or by Open is returned
//     wrapped; both are impossible with the default percolation system
//     given in-range coordinates.
//
// Complexity: O(trials · openings · α(n²)) with the default system;
// Memory: O(trials) for the recorded thresholds.
func New(n, trials int, opts *Options) (*Stats, error) {
	// 1. Validate arguments before any simulation work.
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	if trials <= 0 {
		return nil, ErrInvalidTrials
	}

	// 2. Resolve options, falling back to defaults per field.
	cfg := DefaultOptions()
	if opts != nil {
		if opts.Rand != nil {
			cfg.Rand = opts.Rand
		}
		if opts.NewSystem != nil {
			cfg.NewSystem = opts.NewSystem
		}
	}

	// 3. Run every trial to completion; thresholds are fixed afterwards.
	thresholds := make([]float64, trials)
	totalSites := float64(n * n)
	for i := range thresholds {
		sys, err := cfg.NewSystem(n)
		if err != nil {
			return nil, fmt.Errorf("percstats: trial %d: new system: %w", i, err)
		}
		for !sys.Percolates() {
			row := 1 + cfg.Rand.Intn(n)
			col := 1 + cfg.Rand.Intn(n)
			if err = sys.Open(row, col); err != nil {
				return nil, fmt.Errorf("percstats: trial %d: open (%d,%d): %w", i, row, col, err)
			}
		}
		thresholds[i] = float64(sys.NumberOfOpenSites()) / totalSites
	}

	return &Stats{n: n, trials: trials, thresholds: thresholds}, nil
}

// GridSize returns the grid dimension n the trials ran on.
// Complexity: O(1).
func (s *Stats) GridSize() int {
	return s.n
}

// Trials returns the number of completed trials.
// Complexity: O(1).
func (s *Stats) Trials() int {
	return s.trials
}

// Thresholds returns a copy of the recorded per-trial threshold values in
// trial order.
// Complexity: O(trials).
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)

	return out
}

// Mean returns the sample mean of the recorded thresholds.
// Computed on first call, cached thereafter.
// Complexity: O(trials) once, then O(1).
func (s *Stats) Mean() float64 {
	if !s.meanDone {
		m, err := stats.Mean(s.thresholds)
		if err != nil {
			// Unreachable: trials ≥ 1 guarantees a non-empty sample.
			m = math.NaN()
		}
		s.mean = m
		s.meanDone = true
	}

	return s.mean
}

// StdDev returns the Bessel-corrected sample standard deviation of the
// recorded thresholds, or NaN when only one trial ran.
// Computed on first call, cached thereafter.
// Complexity: O(trials) once, then O(1).
func (s *Stats) StdDev() float64 {
	if !s.stddevDone {
		if s.trials == 1 {
			// A single observation has no sample deviation.
			s.stddev = math.NaN()
		} else {
			sd, err := stats.StandardDeviationSample(s.thresholds)
			if err != nil {
				s.stddev = math.NaN()
			} else {
				s.stddev = sd
			}
		}
		s.stddevDone = true
	}

	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval:
// mean − 1.96·stddev/√trials. NaN when trials == 1.
// Complexity: O(1) beyond the cached statistics.
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - confidence95*s.StdDev()/math.Sqrt(float64(s.trials))
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval:
// mean + 1.96·stddev/√trials. NaN when trials == 1.
// Complexity: O(1) beyond the cached statistics.
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + confidence95*s.StdDev()/math.Sqrt(float64(s.trials))
}

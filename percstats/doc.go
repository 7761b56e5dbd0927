// Package percstats estimates the percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// What:
//
//   - New runs `trials` independent simulations over a System collaborator,
//     recording the fraction of open sites at the first moment each system
//     percolates.
//   - Mean, StdDev, ConfidenceLo and ConfidenceHi derive the sample mean,
//     Bessel-corrected sample standard deviation, and a two-sided 95%
//     confidence interval from the recorded thresholds.
//
// Procedure (per trial):
//
//  1. Build a fresh n×n system, all sites blocked.
//  2. Draw (row, col) uniformly over [1,n]² with replacement and open the
//     site (re-opening is a no-op on the collaborator's side), until the
//     system percolates.
//  3. Record openSites / n² as the trial's threshold.
//
// All trials complete inside New; the result is immutable afterwards and
// every statistic is computed once and cached.
//
// The 1.96 multiplier approximates the 97.5th percentile of the standard
// normal distribution, giving a 95% interval under the CLT assumption that
// trial outcomes are i.i.d. With a single trial the sample standard
// deviation is undefined: StdDev and both confidence bounds return NaN.
//
// Complexity:
//
//   - New: O(trials · openings · α(n²)) with the default percolation system.
//   - Each query: O(trials) on first call, O(1) thereafter.
//
// Errors:
//
//   - ErrInvalidDimension: n ≤ 0.
//   - ErrInvalidTrials: trials ≤ 0.
//
// A Stats instance is not safe for concurrent use (queries mutate the
// memoization cache).
package percstats

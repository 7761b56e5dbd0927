// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Percolation tracks an n×n grid of sites, each blocked or open.
//   - Open(row, col) opens a site and links it to open orthogonal neighbors.
//   - Percolates reports whether open sites connect the top row to the
//     bottom row.
//
// Why:
//
//   - Monte Carlo estimation of the percolation threshold (see percstats).
//   - Porosity/connectivity questions on grid media.
//
// How:
//
//   - A disjoint-set (union-find) structure with path compression and union
//     by rank, over one element per site plus two virtual nodes: the virtual
//     top (linked to every open site in row 1) and the virtual bottom
//     (linked to every open site in row n). The system percolates exactly
//     when the two virtual nodes share a root.
//
// Coordinates are 1-based: row and col both range over [1, n].
//
// Complexity:
//
//   - Open:              O(α(n²)) amortized (inverse Ackermann).
//   - Percolates/IsOpen: O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//   - Memory:            O(n²).
//
// Errors:
//
//   - ErrInvalidDimension: New called with n ≤ 0.
//   - ErrOutOfBounds: row or col outside [1, n].
//
// A Percolation is not safe for concurrent use.
package percolation

// Package percolation defines the Percolation type and sentinel errors.
package percolation

import "errors"

// Sentinel errors for percolation operations.
var (
	// ErrInvalidDimension indicates a non-positive grid dimension.
	ErrInvalidDimension = errors.New("percolation: grid dimension must be positive")
	// ErrOutOfBounds indicates a row or column outside [1, n].
	ErrOutOfBounds = errors.New("percolation: row and column must lie in [1, n]")
)

// neighborOffsets lists the four orthogonal (row, col) deltas used when
// linking a freshly opened site to adjacent open sites.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Percolation is an n×n grid of sites, initially all blocked. Connectivity
// between open sites is tracked with a disjoint-set forest holding one
// element per site plus two virtual nodes (top and bottom).
//
// Invariants:
//   - openSites equals the number of true entries in open.
//   - Every open site in row 1 shares a root with virtualTop; every open
//     site in row n shares a root with virtualBottom.
type Percolation struct {
	n         int    // grid dimension
	open      []bool // row-major open flags, length n*n
	openSites int

	// Disjoint-set forest over n*n sites + 2 virtual nodes.
	parent []int
	rank   []int

	virtualTop    int // index n*n
	virtualBottom int // index n*n + 1
}

// New constructs a Percolation over an n×n grid with all sites blocked.
// Returns ErrInvalidDimension if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	total := n * n
	p := &Percolation{
		n:             n,
		open:          make([]bool, total),
		parent:        make([]int, total+2),
		rank:          make([]int, total+2),
		virtualTop:    total,
		virtualBottom: total + 1,
	}
	// Each node starts as its own root.
	for i := range p.parent {
		p.parent[i] = i
	}

	return p, nil
}

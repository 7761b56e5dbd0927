package percolation

// Size returns the grid dimension n.
// Complexity: O(1).
func (p *Percolation) Size() int {
	return p.n
}

// NumberOfOpenSites returns the count of currently open sites.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.openSites
}

// IsOpen reports whether the site at (row, col) is open.
// Returns ErrOutOfBounds if either coordinate lies outside [1, n].
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if !p.inBounds(row, col) {
		return false, ErrOutOfBounds
	}

	return p.open[p.index(row, col)], nil
}

// Open opens the site at (row, col) and links it to any open orthogonal
// neighbors, plus the virtual top (row 1) or bottom (row n) node.
// Opening an already-open site is a no-op. Returns ErrOutOfBounds if either
// coordinate lies outside [1, n].
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if !p.inBounds(row, col) {
		return ErrOutOfBounds
	}

	idx := p.index(row, col)
	if p.open[idx] {
		// Idempotent: the connectivity structure is already up to date.
		return nil
	}
	p.open[idx] = true
	p.openSites++

	// Edge rows connect to the virtual nodes. For n == 1 a single opened
	// site joins both, so the system percolates immediately.
	if row == 1 {
		p.union(idx, p.virtualTop)
	}
	if row == p.n {
		p.union(idx, p.virtualBottom)
	}

	// Link to open orthogonal neighbors.
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !p.inBounds(nr, nc) {
			continue
		}
		nIdx := p.index(nr, nc)
		if p.open[nIdx] {
			p.union(idx, nIdx)
		}
	}

	return nil
}

// Percolates reports whether a chain of open, orthogonally connected sites
// joins the top row to the bottom row.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	return p.find(p.virtualTop) == p.find(p.virtualBottom)
}

// inBounds reports whether the 1-based (row, col) lies within the grid.
// Complexity: O(1).
func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// index maps 1-based (row, col) to a row-major site index.
// Complexity: O(1).
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

// find returns the root of u's set, compressing the path as it walks.
func (p *Percolation) find(u int) int {
	for p.parent[u] != u {
		// Path compression: make u point to its grandparent.
		p.parent[u] = p.parent[p.parent[u]]
		u = p.parent[u]
	}

	return u
}

// union merges the sets containing u and v, attaching the smaller-rank
// tree under the larger-rank root.
func (p *Percolation) union(u, v int) {
	rootU := p.find(u)
	rootV := p.find(v)
	if rootU == rootV {
		return
	}
	if p.rank[rootU] < p.rank[rootV] {
		p.parent[rootU] = rootV
	} else {
		p.parent[rootV] = rootU
		if p.rank[rootU] == p.rank[rootV] {
			p.rank[rootU]++
		}
	}
}

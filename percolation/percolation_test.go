package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
)

// mustOpen opens a site and fails the test on error.
func mustOpen(t *testing.T, p *percolation.Percolation, row, col int) {
	t.Helper()
	require.NoError(t, p.Open(row, col))
}

// TestNew_RejectsNonPositiveDimension covers n ≤ 0 validation.
func TestNew_RejectsNonPositiveDimension(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := percolation.New(n)
		assert.ErrorIs(t, err, percolation.ErrInvalidDimension)
	}
}

// TestNew_StartsFullyBlocked verifies the initial state of a fresh grid.
func TestNew_StartsFullyBlocked(t *testing.T) {
	p, err := percolation.New(3)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Size())
	assert.Zero(t, p.NumberOfOpenSites())
	assert.False(t, p.Percolates())
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			isOpen, err := p.IsOpen(row, col)
			require.NoError(t, err)
			assert.False(t, isOpen)
		}
	}
}

// TestOpen_RejectsOutOfBounds checks 1-based bounds validation on every
// operation taking coordinates.
func TestOpen_RejectsOutOfBounds(t *testing.T) {
	p, err := percolation.New(4)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {5, 1}, {1, 5}, {-3, 2}} {
		assert.ErrorIs(t, p.Open(rc[0], rc[1]), percolation.ErrOutOfBounds)
		_, err = p.IsOpen(rc[0], rc[1])
		assert.ErrorIs(t, err, percolation.ErrOutOfBounds)
	}
	assert.Zero(t, p.NumberOfOpenSites())
}

// TestOpen_IsIdempotent verifies reopening a site changes nothing.
func TestOpen_IsIdempotent(t *testing.T) {
	p, err := percolation.New(4)
	require.NoError(t, err)

	mustOpen(t, p, 2, 2)
	mustOpen(t, p, 2, 2)
	mustOpen(t, p, 2, 2)
	assert.Equal(t, 1, p.NumberOfOpenSites())
}

// TestPercolates_VerticalColumn opens a single column top to bottom and
// expects percolation exactly at the last opening.
func TestPercolates_VerticalColumn(t *testing.T) {
	const n = 5
	p, err := percolation.New(n)
	require.NoError(t, err)

	for row := 1; row < n; row++ {
		mustOpen(t, p, row, 3)
		assert.False(t, p.Percolates(), "row %d should not yet percolate", row)
	}
	mustOpen(t, p, n, 3)
	assert.True(t, p.Percolates())
	assert.Equal(t, n, p.NumberOfOpenSites())
}

// TestPercolates_ZigZagPath opens an L-shaped path: connectivity is
// orthogonal, so the corner site is required.
func TestPercolates_ZigZagPath(t *testing.T) {
	p, err := percolation.New(3)
	require.NoError(t, err)

	// Column 1 down to row 2, then across to column 3, then down.
	mustOpen(t, p, 1, 1)
	mustOpen(t, p, 2, 1)
	mustOpen(t, p, 2, 2)
	mustOpen(t, p, 2, 3)
	assert.False(t, p.Percolates())

	mustOpen(t, p, 3, 3)
	assert.True(t, p.Percolates())
}

// TestPercolates_DiagonalDoesNotConnect: diagonal adjacency must not count.
func TestPercolates_DiagonalDoesNotConnect(t *testing.T) {
	p, err := percolation.New(2)
	require.NoError(t, err)

	mustOpen(t, p, 1, 1)
	mustOpen(t, p, 2, 2)
	assert.False(t, p.Percolates())

	// Completing an orthogonal bridge percolates.
	mustOpen(t, p, 1, 2)
	assert.True(t, p.Percolates())
}

// TestPercolates_SingleSiteGrid: on a 1×1 grid one opening percolates,
// since row 1 is both the top and the bottom row.
func TestPercolates_SingleSiteGrid(t *testing.T) {
	p, err := percolation.New(1)
	require.NoError(t, err)

	assert.False(t, p.Percolates())
	mustOpen(t, p, 1, 1)
	assert.True(t, p.Percolates())
	assert.Equal(t, 1, p.NumberOfOpenSites())
}

// TestPercolates_AllSitesOpenAlwaysPercolates: a fully opened grid spans
// its rows regardless of the opening order.
func TestPercolates_AllSitesOpenAlwaysPercolates(t *testing.T) {
	const n = 6
	p, err := percolation.New(n)
	require.NoError(t, err)

	// Shuffle the coordinate space deterministically.
	coords := make([][2]int, 0, n*n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			coords = append(coords, [2]int{row, col})
		}
	}
	r := rand.New(rand.NewSource(42))
	r.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })

	for _, rc := range coords {
		mustOpen(t, p, rc[0], rc[1])
	}
	assert.True(t, p.Percolates())
	assert.Equal(t, n*n, p.NumberOfOpenSites())
}

// TestRandomOpening_MonotonePercolation: once the system percolates it
// stays percolated as more sites open.
func TestRandomOpening_MonotonePercolation(t *testing.T) {
	const n = 10
	p, err := percolation.New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	for !p.Percolates() {
		mustOpen(t, p, 1+r.Intn(n), 1+r.Intn(n))
	}
	threshold := p.NumberOfOpenSites()
	assert.GreaterOrEqual(t, threshold, n) // needs at least one site per row

	// Keep opening: percolation is monotone.
	for i := 0; i < 50; i++ {
		mustOpen(t, p, 1+r.Intn(n), 1+r.Intn(n))
		assert.True(t, p.Percolates())
	}
}

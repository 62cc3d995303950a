package maze

import (
	"fmt"
	"math/rand"
	"time"
)

type Config struct {
	// Logical cell grid dimensions, both >= 1.
	Nx, Ny int

	// Braiding: 0.0 (perfect maze/tree) to 1.0 (every redundant edge open).
	// The fraction of cycle-closing edges reopened after the spanning carve.
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

// edge is a candidate wall-opening slot between two adjacent cells.
// Horizontal-adjacency edges have even x, vertical-adjacency even y.
type edge struct {
	x, y int
}

func (e edge) horizontal() bool { return e.x%2 == 0 }

// cells returns the grid coordinates of the two cells the edge separates.
func (e edge) cells() (a, b edge) {
	if e.horizontal() {
		return edge{e.x - 1, e.y}, edge{e.x + 1, e.y}
	}
	return edge{e.x, e.y - 1}, edge{e.x, e.y + 1}
}

// cellIndex maps a cell's grid coordinate to its linear DisjointSet index.
func cellIndex(x, y, nx int) int {
	return (y/2)*nx + x/2
}

// Generate carves a maze with randomized Kruskal over a disjoint set,
// then reopens a Braiding fraction of the cycle-closing edges so the
// result is not a perfect tree. Every cell is reachable from every other
// and the outer border ring stays wall.
func Generate(cfg Config) (*Grid, error) {
	nx, ny := cfg.Nx, cfg.Ny
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("maze: invalid dimensions %dx%d", nx, ny)
	}
	braid := cfg.Braiding
	if braid < 0 {
		braid = 0
	}
	if braid > 1 {
		braid = 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := newEmptyGrid(nx, ny)

	// Interior edge slots only: border slots do not sit between two cells.
	edges := make([]edge, 0, ny*(nx-1)+nx*(ny-1))
	for y := 0; y < ny; y++ {
		for x := 1; x < nx; x++ {
			edges = append(edges, edge{2 * x, 2*y + 1})
		}
	}
	for x := 0; x < nx; x++ {
		for y := 1; y < ny; y++ {
			edges = append(edges, edge{2*x + 1, 2 * y})
		}
	}
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	sets := NewDisjointSet(nx * ny)
	var unused []edge

	for _, e := range edges {
		a, b := e.cells()
		ia, ib := cellIndex(a.x, a.y, nx), cellIndex(b.x, b.y, nx)
		if !sets.SameSet(ia, ib) {
			sets.Union(ia, ib)
			grid.Tiles[e.y][e.x] = Free
		} else {
			unused = append(unused, e)
		}
	}

	// Reopen some cycle-closing edges so the explorer faces loops and
	// alternate routes instead of a tree.
	rng.Shuffle(len(unused), func(i, j int) {
		unused[i], unused[j] = unused[j], unused[i]
	})
	n := int(braid * float64(len(unused)))
	for _, e := range unused[:n] {
		grid.Tiles[e.y][e.x] = Free
	}

	return grid, nil
}

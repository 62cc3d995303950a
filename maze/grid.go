package maze

// Tile is a single grid square.
type Tile uint8

const (
	Free Tile = iota
	Wall
)

// Grid is the tile field for a logical nx x ny cell maze.
// Cell (i, j) lives at grid coordinate (2i+1, 2j+1); the slots between
// adjacent cells sit at the mixed-parity coordinates; everything even-even
// and the outer ring is permanent wall. Dimensions are (2nx+1) x (2ny+1).
type Grid struct {
	Nx, Ny int
	Tiles  [][]Tile // row-major: Tiles[y][x]
}

// Width returns the tile width (2*Nx + 1).
func (g *Grid) Width() int { return 2*g.Nx + 1 }

// Height returns the tile height (2*Ny + 1).
func (g *Grid) Height() int { return 2*g.Ny + 1 }

// At returns the tile at (x, y). The second result is false when the
// coordinate lies outside the grid; callers treating absent tiles as
// blocked should not rely on the border ring alone.
func (g *Grid) At(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || y >= len(g.Tiles) || x >= len(g.Tiles[y]) {
		return Wall, false
	}
	return g.Tiles[y][x], true
}

// newEmptyGrid builds the initial wall/free pattern: cells open,
// every edge slot and the full border closed.
func newEmptyGrid(nx, ny int) *Grid {
	h, w := 2*ny+1, 2*nx+1
	tiles := make([][]Tile, h)
	for y := range tiles {
		row := make([]Tile, w)
		for x := range row {
			if x%2 == 1 && y%2 == 1 {
				row[x] = Free
			} else {
				row[x] = Wall
			}
		}
		tiles[y] = row
	}
	return &Grid{Nx: nx, Ny: ny, Tiles: tiles}
}

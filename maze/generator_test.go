package maze

import "testing"

// reachableFreeTiles flood-fills free tiles from (sx, sy).
func reachableFreeTiles(g *Grid, sx, sy int) map[[2]int]bool {
	seen := map[[2]int]bool{{sx, sy}: true}
	queue := [][2]int{{sx, sy}}
	dirs := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if seen[n] {
				continue
			}
			if tile, ok := g.At(n[0], n[1]); ok && tile == Free {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

func TestGenerateRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
	}{
		{"Zero width", 0, 3},
		{"Zero height", 3, 0},
		{"Both zero", 0, 0},
		{"Negative", -1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(Config{Nx: tt.nx, Ny: tt.ny}); err == nil {
				t.Errorf("Generate(%d, %d) succeeded, want error", tt.nx, tt.ny)
			}
		})
	}
}

func TestGenerateBorderStaysWall(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {4, 4}, {16, 16}, {7, 3}}
	for _, s := range sizes {
		g, err := Generate(Config{Nx: s[0], Ny: s[1], Braiding: 0.5, Seed: 42})
		if err != nil {
			t.Fatalf("Generate(%v): %v", s, err)
		}
		w, h := g.Width(), g.Height()
		for x := 0; x < w; x++ {
			if tile, _ := g.At(x, 0); tile != Wall {
				t.Errorf("size %v: top border (%d,0) not Wall", s, x)
			}
			if tile, _ := g.At(x, h-1); tile != Wall {
				t.Errorf("size %v: bottom border (%d,%d) not Wall", s, x, h-1)
			}
		}
		for y := 0; y < h; y++ {
			if tile, _ := g.At(0, y); tile != Wall {
				t.Errorf("size %v: left border (0,%d) not Wall", s, y)
			}
			if tile, _ := g.At(w-1, y); tile != Wall {
				t.Errorf("size %v: right border (%d,%d) not Wall", s, w-1, y)
			}
		}
	}
}

func TestGenerateCellsAreFree(t *testing.T) {
	g, err := Generate(Config{Nx: 5, Ny: 4, Braiding: 0.5, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if tile, _ := g.At(2*i+1, 2*j+1); tile != Free {
				t.Errorf("cell (%d,%d) at (%d,%d) not Free", i, j, 2*i+1, 2*j+1)
			}
		}
	}
	// Junction slots (even-even) must never be carved.
	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x += 2 {
			if tile, _ := g.At(x, y); tile != Wall {
				t.Errorf("junction (%d,%d) not Wall", x, y)
			}
		}
	}
}

func TestGenerateConnectivity(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {3, 3}, {8, 5}, {16, 16}}
	for _, s := range sizes {
		for seed := int64(1); seed <= 3; seed++ {
			g, err := Generate(Config{Nx: s[0], Ny: s[1], Braiding: 0.5, Seed: seed})
			if err != nil {
				t.Fatalf("Generate(%v): %v", s, err)
			}
			reach := reachableFreeTiles(g, 1, 1)
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					if !reach[[2]int{2*i + 1, 2*j + 1}] {
						t.Errorf("size %v seed %d: cell (%d,%d) unreachable from (0,0)",
							s, seed, i, j)
					}
				}
			}
		}
	}
}

func TestGenerateTwoByOne(t *testing.T) {
	g, err := Generate(Config{Nx: 2, Ny: 1, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 5x3", g.Width(), g.Height())
	}
	// The single interior edge between the two cells must be carved.
	if tile, _ := g.At(2, 1); tile != Free {
		t.Error("edge slot (2,1) not opened")
	}
	reach := reachableFreeTiles(g, 1, 1)
	if !reach[[2]int{3, 1}] {
		t.Error("cell (1,0) not connected to cell (0,0)")
	}
}

func TestGenerateSingleCell(t *testing.T) {
	g, err := Generate(Config{Nx: 1, Ny: 1, Braiding: 0.5, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	free := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if tile, _ := g.At(x, y); tile == Free {
				free++
				if x != 1 || y != 1 {
					t.Errorf("unexpected Free tile at (%d,%d)", x, y)
				}
			}
		}
	}
	if free != 1 {
		t.Errorf("free tile count = %d, want 1 (center only)", free)
	}
}

func TestGenerateOpenedEdgeCount(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
	}{
		{"2x2", 2, 2},
		{"3x3", 3, 3},
		{"4x4", 4, 4},
		{"16x16", 16, 16},
		{"5x2", 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(Config{Nx: tt.nx, Ny: tt.ny, Braiding: 0.5, Seed: 99})
			if err != nil {
				t.Fatal(err)
			}
			opened := 0
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					// Edge slots have exactly one odd coordinate.
					if (x%2)+(y%2) == 1 {
						if tile, _ := g.At(x, y); tile == Free {
							opened++
						}
					}
				}
			}
			total := tt.ny*(tt.nx-1) + tt.nx*(tt.ny-1)
			spanning := tt.nx*tt.ny - 1
			want := spanning + (total-spanning)/2
			if opened != want {
				t.Errorf("opened edges = %d, want %d (spanning %d of %d, braid half of rest)",
					opened, want, spanning, total)
			}
		})
	}
}

func TestGenerateBraidingZeroIsPerfect(t *testing.T) {
	g, err := Generate(Config{Nx: 6, Ny: 6, Braiding: 0, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	opened := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if (x%2)+(y%2) == 1 {
				if tile, _ := g.At(x, y); tile == Free {
					opened++
				}
			}
		}
	}
	if want := 6*6 - 1; opened != want {
		t.Errorf("opened edges = %d, want %d (spanning tree only)", opened, want)
	}
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-crawler/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== KRUSKAL MAZE GENERATOR ===")

		nx := getInt(reader, "Cells wide (default 16): ", 16)
		ny := getInt(reader, "Cells high (default 16): ", 16)
		braid := getFloat(reader, "Braiding factor [0.0 - 1.0] (default 0.5): ", 0.5)
		seed := getInt(reader, "Seed (default 0 = random): ", 0)

		cfg := maze.Config{
			Nx:       nx,
			Ny:       ny,
			Braiding: braid,
			Seed:     int64(seed),
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid, err := maze.Generate(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d\n", grid.Width(), grid.Height())

		spanning := nx*ny - 1
		opened := countOpenedEdges(grid)
		total := ny*(nx-1) + nx*(ny-1)
		fmt.Printf("Opened Edges: %d of %d candidates (%d spanning, %d loops)\n",
			opened, total, spanning, opened-spanning)

		draw(grid)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// countOpenedEdges counts carved slots between cells. Edge slots have
// exactly one odd coordinate.
func countOpenedEdges(g *maze.Grid) int {
	opened := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if (x%2)+(y%2) != 1 {
				continue
			}
			if tile, _ := g.At(x, y); tile == maze.Free {
				opened++
			}
		}
	}
	return opened
}

func draw(g *maze.Grid) {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if tile, _ := g.At(x, y); tile == maze.Wall {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

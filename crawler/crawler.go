// Package crawler implements the autonomous maze explorer: depth-first
// coverage driven only by local 3x3 sensing, a visited set, and an
// explicit backtrack stack. The crawler reads the grid read-only and
// owns all of its own state; pacing belongs to the caller.
package crawler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-crawler/maze"
	"github.com/lixenwraith/maze-crawler/trace"
)

// ErrConsistency marks fatal internal bugs: the crawler attempted a move
// its own sensing should have filtered out. Callers must abort, not retry.
var ErrConsistency = errors.New("crawler: internal consistency violation")

// Outcome reports what a Step did.
type Outcome int

const (
	Moved Outcome = iota
	Backtracked
	Completed // stack exhausted; a fresh maze was generated and state reset
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Backtracked:
		return "backtracked"
	case Completed:
		return "completed"
	}
	return "unknown"
}

type Config struct {
	// Cell grid dimensions for generated mazes, both >= 1.
	Nx, Ny int

	// Braiding passed through to the generator (0 = perfect maze).
	Braiding float64

	Seed int64 // Optional (0 = Random)

	// Trace receives per-step decision lines. Nil means no tracing.
	Trace trace.Logger
}

// Crawler walks a generated maze one tile per Step. When it has exhausted
// every reachable tile it discards the maze and starts over on a fresh one.
type Crawler struct {
	cfg  Config
	log  trace.Logger
	grid *maze.Grid

	pos     Pos
	dir     Direction
	visited map[Pos]bool
	stack   []Pos

	runID string
	runs  int
	steps int // steps taken within the current run
}

// New generates the first maze and places the crawler at the entrance
// cell (1,1) facing East.
func New(cfg Config) (*Crawler, error) {
	if cfg.Trace == nil {
		cfg.Trace = trace.Nop
	}
	c := &Crawler{cfg: cfg, log: cfg.Trace}
	if err := c.Regenerate(cfg.Nx, cfg.Ny); err != nil {
		return nil, err
	}
	return c, nil
}

// Regenerate discards the current maze and walker state and starts a
// fresh run on an nx x ny maze.
func (c *Crawler) Regenerate(nx, ny int) error {
	grid, err := maze.Generate(maze.Config{
		Nx:       nx,
		Ny:       ny,
		Braiding: c.cfg.Braiding,
		Seed:     c.cfg.Seed,
	})
	if err != nil {
		return err
	}
	c.cfg.Nx, c.cfg.Ny = nx, ny
	c.grid = grid
	c.pos = Pos{X: 1, Y: 1}
	c.dir = East
	c.visited = map[Pos]bool{c.pos: true}
	c.stack = nil
	c.steps = 0
	c.runs++
	c.runID = uuid.NewString()
	c.log.Printf("run %s: generated %dx%d maze, start %s facing %s",
		c.runID, nx, ny, c.pos, c.dir)
	return nil
}

// Scan reads the nine tiles of the 3x3 neighborhood in the crawler's own
// frame, row by row from (-1,-1) to (1,1). Front is index 1, left 3,
// right 5. Tiles off the grid read as Wall.
func (c *Crawler) Scan() [9]maze.Tile {
	var out [9]maze.Tile
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out[i] = c.sense(dx, dy)
			i++
		}
	}
	return out
}

// sense reads one tile at a crawler-relative offset, treating absent
// coordinates as blocked.
func (c *Crawler) sense(dx, dy int) maze.Tile {
	p, ok := c.pos.Add(RelPos{X: dx, Y: dy, Dir: c.dir})
	if !ok {
		return maze.Wall
	}
	tile, ok := c.grid.At(p.X, p.Y)
	if !ok {
		return maze.Wall
	}
	return tile
}

// Scan indices for the three candidate directions.
const (
	scanFront = 1
	scanLeft  = 3
	scanRight = 5
)

// Step advances the crawler by exactly one tile of progress.
//
// Selection policy: deterministic priority, front then right then left
// (eligible = sensed free and unvisited). When none is eligible the
// crawler backtracks; when the backtrack stack is already empty the
// traversal is complete and the crawler restarts on a freshly generated
// maze, returning Completed.
func (c *Crawler) Step() (Outcome, error) {
	c.steps++

	scan := c.Scan()
	frontPos, frontOK := c.pos.Add(RelPos{X: 0, Y: -1, Dir: c.dir})
	rightPos, rightOK := c.pos.Add(RelPos{X: 1, Y: 0, Dir: c.dir})
	leftPos, leftOK := c.pos.Add(RelPos{X: -1, Y: 0, Dir: c.dir})

	switch {
	case frontOK && scan[scanFront] == maze.Free && !c.visited[frontPos]:
		c.log.Printf("run %s: at %s facing %s: move front", c.runID, c.pos, c.dir)
		c.push(frontPos)
		return Moved, c.advance()
	case rightOK && scan[scanRight] == maze.Free && !c.visited[rightPos]:
		c.log.Printf("run %s: at %s facing %s: move right", c.runID, c.pos, c.dir)
		c.push(rightPos)
		c.dir = c.dir.Right()
		return Moved, c.advance()
	case leftOK && scan[scanLeft] == maze.Free && !c.visited[leftPos]:
		c.log.Printf("run %s: at %s facing %s: move left", c.runID, c.pos, c.dir)
		c.push(leftPos)
		c.dir = c.dir.Left()
		return Moved, c.advance()
	}

	// Nothing eligible: retrace one cell, or finish the run.
	if len(c.stack) == 0 {
		c.log.Printf("run %s: traversal complete, %d tiles visited in %d steps",
			c.runID, len(c.visited), c.steps)
		if err := c.Regenerate(c.cfg.Nx, c.cfg.Ny); err != nil {
			return Completed, err
		}
		return Completed, nil
	}
	back := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.log.Printf("run %s: at %s facing %s: backtrack to %s", c.runID, c.pos, c.dir, back)

	turned := false
	for i := 0; i < 4; i++ {
		if front, ok := c.pos.Add(RelPos{X: 0, Y: -1, Dir: c.dir}); ok && front == back {
			turned = true
			break
		}
		c.dir = c.dir.Right()
	}
	if !turned {
		return Backtracked, fmt.Errorf("%w: popped %s is not adjacent to %s",
			ErrConsistency, back, c.pos)
	}
	return Backtracked, c.advance()
}

// push records the current position for backtracking and marks the chosen
// target visited before the move happens.
func (c *Crawler) push(target Pos) {
	c.stack = append(c.stack, c.pos)
	c.visited[target] = true
}

// advance moves one tile in the current facing. The eligibility filter and
// the backtrack rotation guarantee the tile ahead is free; anything else
// is a bug in the sensing or rotation algebra.
func (c *Crawler) advance() error {
	target, ok := c.pos.Add(RelPos{X: 0, Y: -1, Dir: c.dir})
	if !ok {
		return fmt.Errorf("%w: step off the grid from %s facing %s",
			ErrConsistency, c.pos, c.dir)
	}
	tile, ok := c.grid.At(target.X, target.Y)
	if !ok || tile != maze.Free {
		return fmt.Errorf("%w: step into wall at %s", ErrConsistency, target)
	}
	c.pos = target
	return nil
}

// Grid returns the current maze. Read-only for callers.
func (c *Crawler) Grid() *maze.Grid { return c.grid }

// Pos returns the crawler's absolute position.
func (c *Crawler) Pos() Pos { return c.pos }

// Facing returns the crawler's current direction.
func (c *Crawler) Facing() Direction { return c.dir }

// Visited returns the set of positions entered this run. Read-only for
// callers.
func (c *Crawler) Visited() map[Pos]bool { return c.visited }

// Stack returns the backtrack history, oldest first. Read-only for callers.
func (c *Crawler) Stack() []Pos { return c.stack }

// RunID identifies the current maze run in the trace log.
func (c *Crawler) RunID() string { return c.runID }

// Runs counts mazes started, including the first.
func (c *Crawler) Runs() int { return c.runs }

// Steps counts Step calls within the current run.
func (c *Crawler) Steps() int { return c.steps }

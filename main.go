package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-crawler/audio"
	"github.com/lixenwraith/maze-crawler/crawler"
	"github.com/lixenwraith/maze-crawler/render"
	"github.com/lixenwraith/maze-crawler/trace"
)

type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	crawler  *crawler.Crawler
	player   *audio.Player

	paused bool
	last   crawler.Outcome
}

func NewGame(c *crawler.Crawler, mute bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		renderer: render.New(screen),
		crawler:  c,
		player:   &audio.Player{},
		last:     crawler.Moved,
	}

	if !mute {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		g.player = player
	}

	return g, nil
}

// step advances the crawler one tile and plays the matching cue.
// A consistency error is fatal and propagates to the run loop.
func (g *Game) step() error {
	outcome, err := g.crawler.Step()
	if err != nil {
		return err
	}
	switch outcome {
	case crawler.Completed:
		g.player.Complete()
	case crawler.Backtracked:
		if g.last != crawler.Backtracked {
			g.player.Backtrack()
		}
	}
	g.last = outcome
	return nil
}

// handleInput returns false when the game should exit.
func (g *Game) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false, nil
		}
		switch {
		case ev.Key() == tcell.KeyRight:
			// Manual single-step, regardless of pause state
			if err := g.step(); err != nil {
				return false, err
			}
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			g.paused = !g.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			grid := g.crawler.Grid()
			if err := g.crawler.Regenerate(grid.Nx, grid.Ny); err != nil {
				return false, err
			}
			g.last = crawler.Moved
		}
		g.renderer.Draw(g.crawler, g.paused)

	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Draw(g.crawler, g.paused)
	}
	return true, nil
}

func (g *Game) run(tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	g.renderer.Draw(g.crawler, g.paused)

	for {
		select {
		case ev := <-eventChan:
			cont, err := g.handleInput(ev)
			if err != nil || !cont {
				return err
			}

		case <-ticker.C:
			if g.paused {
				continue
			}
			if err := g.step(); err != nil {
				return err
			}
			g.renderer.Draw(g.crawler, g.paused)
		}
	}
}

func (g *Game) cleanup() {
	g.player.Close()
	g.screen.Fini()
}

func main() {
	nx := flag.Int("nx", 16, "maze width in cells")
	ny := flag.Int("ny", 16, "maze height in cells")
	tick := flag.Duration("tick", 100*time.Millisecond, "interval between automatic steps")
	braid := flag.Float64("braid", 0.5, "fraction of redundant edges reopened as loops (0..1)")
	tracePath := flag.String("trace", "", "write the step trace to this file")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	logger := trace.Nop
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = trace.New(f)
	}

	c, err := crawler.New(crawler.Config{
		Nx:       *nx,
		Ny:       *ny,
		Braiding: *braid,
		Trace:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(c, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = game.run(*tick)
	game.cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

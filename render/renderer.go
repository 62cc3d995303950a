// Package render draws the maze and crawler state onto a tcell screen.
// It reads core state only; tile-to-style mapping lives here, not in the
// core packages.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-crawler/crawler"
	"github.com/lixenwraith/maze-crawler/maze"
)

var (
	styleFree    = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleWall    = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleVisited = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleStack   = tcell.StyleDefault.Background(tcell.ColorYellow)
	styleCrawler = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

func tileStyle(t maze.Tile) tcell.Style {
	if t == maze.Wall {
		return styleWall
	}
	return styleFree
}

type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame: tiles, visited overlay, backtrack stack overlay,
// the crawler itself, and a HUD line below the maze.
func (r *Renderer) Draw(c *crawler.Crawler, paused bool) {
	r.screen.Clear()

	g := c.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile, _ := g.At(x, y)
			r.setTile(x, y, tileStyle(tile))
		}
	}

	for pos := range c.Visited() {
		r.setTile(pos.X, pos.Y, styleVisited)
	}
	for _, pos := range c.Stack() {
		r.setTile(pos.X, pos.Y, styleStack)
	}
	r.setTile(c.Pos().X, c.Pos().Y, styleCrawler)

	mode := "running"
	if paused {
		mode = "paused"
	}
	hud := fmt.Sprintf(" run %d  step %d  visited %d  facing %s  [%s]  space:pause  right:step  r:regen  q:quit",
		c.Runs(), c.Steps(), len(c.Visited()), c.Facing(), mode)
	r.drawText(0, g.Height()+1, hud, styleHUD)

	r.screen.Show()
}

// setTile paints one maze tile as two terminal cells to compensate for
// the character cell aspect ratio.
func (r *Renderer) setTile(x, y int, style tcell.Style) {
	r.screen.SetContent(2*x, y, ' ', nil, style)
	r.screen.SetContent(2*x+1, y, ' ', nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

package crawler

import "fmt"

// Pos is an absolute grid coordinate. Screen convention: y grows downward,
// so North decreases y.
type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// RelPos is an offset expressed in a direction-relative frame: (0,-1) is
// one tile ahead of something facing Dir, (1,0) one tile to its right.
type RelPos struct {
	X, Y int
	Dir  Direction
}

// ReorientRight re-expresses the offset in the frame rotated 90 degrees
// clockwise: (x, y) -> (y, -x).
func (r RelPos) ReorientRight() RelPos {
	return RelPos{X: r.Y, Y: -r.X, Dir: r.Dir.Right()}
}

// Reorient re-expresses the offset in dir's frame. Terminates in at most
// three right-reorientations.
func (r RelPos) Reorient(dir Direction) RelPos {
	for r.Dir != dir {
		r = r.ReorientRight()
	}
	return r
}

// Add combines the position with a relative offset by rotating it into the
// grid's North-up frame first. The second result is false when a coordinate
// would go negative; grid-extent checks are the caller's concern.
func (p Pos) Add(r RelPos) (Pos, bool) {
	abs := r.Reorient(North)
	q := Pos{X: p.X + abs.X, Y: p.Y + abs.Y}
	if q.X < 0 || q.Y < 0 {
		return Pos{}, false
	}
	return q, true
}

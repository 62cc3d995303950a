package crawler

// Direction is a cardinal facing. Right/Left rotate by 90 degrees and are
// mutual inverses with period 4.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) Right() Direction {
	return (d + 1) % 4
}

func (d Direction) Left() Direction {
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

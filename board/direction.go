package board

// A Direction is one of the eight unit steps on the board. Rows grow
// downward (south) and columns grow rightward (east).
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	NorthEast
	SouthWest
	SouthEast
)

var deltas = [...][2]int{
	North:     {-1, 0},
	South:     {1, 0},
	West:      {0, -1},
	East:      {0, 1},
	NorthWest: {-1, -1},
	NorthEast: {-1, 1},
	SouthWest: {1, -1},
	SouthEast: {1, 1},
}

var names = [...]string{
	North:     "N",
	South:     "S",
	West:      "W",
	East:      "E",
	NorthWest: "NW",
	NorthEast: "NE",
	SouthWest: "SW",
	SouthEast: "SE",
}

// Directions lists all eight directions in a fixed order. Scoring code
// iterates over this slice, so the order is part of the observable behavior.
var Directions = []Direction{North, South, West, East, NorthWest, NorthEast, SouthWest, SouthEast}

// Axes are the four undirected lines through a cell. Each pair is a
// direction and its opposite.
var Axes = [4][2]Direction{
	{West, East},
	{North, South},
	{NorthWest, SouthEast},
	{NorthEast, SouthWest},
}

func (d Direction) DRow() int {
	return deltas[d][0]
}

func (d Direction) DCol() int {
	return deltas[d][1]
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	}
	panic("unknown direction")
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return "?"
}

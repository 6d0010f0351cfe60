package evaluator

import "github.com/domino14/gomoku/board"

// Shape describes how many ends of a run are free to extend.
type Shape uint8

const (
	// Closed runs are blocked (by a stone or the edge) on both ends.
	Closed Shape = iota
	SemiOpen
	Open
)

func (s Shape) String() string {
	switch s {
	case Open:
		return "open"
	case SemiOpen:
		return "semi-open"
	}
	return "closed"
}

// A Sequence is the run a hypothetical stone would form along one direction
// and its opposite.
type Sequence struct {
	Length   int
	Forward  int
	Backward int
	Shape    Shape
}

// Classify computes the run that placing color at (row, col) would create
// along direction d (counting both d and its opposite), and whether the
// cells just past each end of that run are empty and on the board.
func Classify(b *board.Board, row, col int, color board.Color, d board.Direction) Sequence {
	opp := d.Opposite()
	fwd := b.CountRun(row, col, color, d)
	bwd := b.CountRun(row, col, color, opp)

	fwdOpen := b.IsEmpty(row+d.DRow()*(fwd+1), col+d.DCol()*(fwd+1))
	bwdOpen := b.IsEmpty(row+opp.DRow()*(bwd+1), col+opp.DCol()*(bwd+1))

	seq := Sequence{Length: 1 + fwd + bwd, Forward: fwd, Backward: bwd}
	switch {
	case fwdOpen && bwdOpen:
		seq.Shape = Open
	case fwdOpen || bwdOpen:
		seq.Shape = SemiOpen
	default:
		seq.Shape = Closed
	}
	return seq
}

// IsOpen is true if the run is exactly length long and free on both ends.
func (s Sequence) IsOpen(length int) bool {
	return s.Length == length && s.Shape == Open
}

// IsSemiOpen is true if the run is exactly length long and free on at
// least one end.
func (s Sequence) IsSemiOpen(length int) bool {
	return s.Length == length && s.Shape != Closed
}

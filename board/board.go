// Package board holds the N-in-a-row game board: stone placement, bounds
// and adjacency queries, and the directional run counting that win
// detection and move scoring are built on.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrCellOccupied  = errors.New("cell already occupied")
	ErrInvalidColor  = errors.New("invalid stone color")
)

// A Board is a square grid of odd size. Cells hold a Color; Empty means
// no stone. Stones are not linked to one another: every line query is a
// scan over the grid, so queries work equally well for hypothetical
// placements and for freshly expanded boards.
type Board struct {
	size  int
	cells []Color
	// number of stones placed
	stones int
}

// New creates an empty board. The size must be odd so the board has a
// single center cell for the opening stone.
func New(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidConfig, size)
	}
	if size%2 == 0 {
		return nil, fmt.Errorf("%w: board size must be odd, got %d", ErrInvalidConfig, size)
	}
	return &Board{size: size, cells: make([]Color, size*size)}, nil
}

// Size is the dimension of the board.
func (b *Board) Size() int {
	return b.size
}

// Center returns the coordinate of the center cell.
func (b *Board) Center() (int, int) {
	c := (b.size - 1) / 2
	return c, c
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// at returns the color at a cell, or Empty when out of bounds.
func (b *Board) at(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Place puts a stone on the board at the stone's own coordinates.
// Adjacency to other stones is a game rule and is not checked here.
func (b *Board) Place(s Stone) error {
	if !s.Color.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidColor, s.Color)
	}
	if !b.InBounds(s.Row, s.Col) {
		return fmt.Errorf("%w: (%d, %d) on a board of size %d", ErrOutOfBounds, s.Row, s.Col, b.size)
	}
	idx := b.index(s.Row, s.Col)
	if b.cells[idx] != Empty {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, s.Row, s.Col)
	}
	b.cells[idx] = s.Color
	b.stones++
	return nil
}

// Get returns the stone at a cell. The boolean is false when the cell is
// empty or outside the board; out-of-bounds reads never fail.
func (b *Board) Get(row, col int) (Stone, bool) {
	c := b.at(row, col)
	if c == Empty {
		return Stone{}, false
	}
	return Stone{Color: c, Row: row, Col: col}, true
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.cells[b.index(row, col)] == Empty
}

// IsAdjacentToOccupied is true if any of the eight neighboring cells holds
// a stone.
func (b *Board) IsAdjacentToOccupied(row, col int) bool {
	for _, d := range Directions {
		if b.at(row+d.DRow(), col+d.DCol()) != Empty {
			return true
		}
	}
	return false
}

// CountRun counts consecutive stones of the given color starting one step
// away from (row, col) in direction d. The cell (row, col) itself is not
// examined.
func (b *Board) CountRun(row, col int, color Color, d Direction) int {
	if !color.Valid() {
		return 0
	}
	count := 0
	r, c := row+d.DRow(), col+d.DCol()
	for b.at(r, c) == color {
		count++
		r += d.DRow()
		c += d.DCol()
	}
	return count
}

// AxisRun is the length of the run through (row, col) along one axis if a
// stone of the given color stood there.
func (b *Board) AxisRun(row, col int, color Color, axis [2]Direction) int {
	return 1 + b.CountRun(row, col, color, axis[0]) + b.CountRun(row, col, color, axis[1])
}

// WouldAlign reports whether placing color at the empty cell (row, col)
// would make a run of at least winLength along any axis.
func (b *Board) WouldAlign(row, col int, color Color, winLength int) bool {
	if !color.Valid() || !b.IsEmpty(row, col) {
		return false
	}
	for _, axis := range Axes {
		if b.AxisRun(row, col, color, axis) >= winLength {
			return true
		}
	}
	return false
}

// IsFull is true when no empty cell remains.
func (b *Board) IsFull() bool {
	return b.stones == len(b.cells)
}

func (b *Board) NumStones() int {
	return b.stones
}

// Stones returns every stone on the board in row-major order.
func (b *Board) Stones() []Stone {
	stones := make([]Stone, 0, b.stones)
	for idx, c := range b.cells {
		if c != Empty {
			stones = append(stones, Stone{Color: c, Row: idx / b.size, Col: idx % b.size})
		}
	}
	return stones
}

// Copy returns an independent board with the same stones.
func (b *Board) Copy() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells, stones: b.stones}
}

// Expand returns a new, larger board with the existing stones centered in
// it. The receiver is left untouched; callers replace their reference.
func (b *Board) Expand(newSize int) (*Board, error) {
	if newSize <= b.size {
		return nil, fmt.Errorf("%w: new size %d must be greater than %d", ErrInvalidConfig, newSize, b.size)
	}
	nb, err := New(newSize)
	if err != nil {
		return nil, err
	}
	offset := (newSize - b.size) / 2
	for _, s := range b.Stones() {
		err = nb.Place(NewStone(s.Color, s.Row+offset, s.Col+offset))
		if err != nil {
			return nil, err
		}
	}
	return nb, nil
}

// Replay builds a fresh board of the given size by placing the stones in
// order. It is the reconstruction path used when loading saved games.
func Replay(size int, stones []Stone) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	for i, s := range stones {
		if err := b.Place(s); err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
	}
	return b, nil
}

// ToDisplayText renders the board as plain text with row and column
// indices around the grid.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	width := len(fmt.Sprint(b.size - 1))
	cell := width + 1
	header := strings.Repeat(" ", width+2)
	for col := 0; col < b.size; col++ {
		header += fmt.Sprintf("%-*d", cell, col)
	}
	sb.WriteString(strings.TrimRight(header, " "))
	sb.WriteString("\n")
	for row := 0; row < b.size; row++ {
		line := fmt.Sprintf("%*d| ", width, row)
		for col := 0; col < b.size; col++ {
			line += fmt.Sprintf("%-*s", cell, b.at(row, col).Symbol())
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString(fmt.Sprintf(" |%d\n", row))
	}
	return sb.String()
}

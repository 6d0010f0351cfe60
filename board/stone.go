package board

import (
	"fmt"
	"strings"
)

// Color is the color of a stone. The zero value is Empty, which is what an
// unoccupied cell holds; it is never a valid stone color.
type Color uint8

const (
	Empty Color = iota
	Dark
	Light
)

// Valid is true only for the two stone colors.
func (c Color) Valid() bool {
	return c == Dark || c == Light
}

// Opponent returns the other stone color. Empty maps to Empty.
func (c Color) Opponent() Color {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Symbol is the single character used for this color in text displays.
func (c Color) Symbol() string {
	switch c {
	case Dark:
		return "X"
	case Light:
		return "O"
	}
	return "."
}

// ColorFromString parses "dark"/"light" (or "x"/"o", "black"/"white").
func ColorFromString(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "black", "x":
		return Dark, nil
	case "light", "white", "o":
		return Light, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// A Stone is an immutable placed piece. Moving a stone is never done;
// a new Stone is created at the new coordinates instead.
type Stone struct {
	Color Color
	Row   int
	Col   int
}

func NewStone(color Color, row, col int) Stone {
	return Stone{Color: color, Row: row, Col: col}
}

func (s Stone) String() string {
	return fmt.Sprintf("%s@(%d,%d)", s.Color, s.Row, s.Col)
}

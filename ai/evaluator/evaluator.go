// Package evaluator scores hypothetical stone placements and picks the
// best move for the bot. Everything here is a read-only function of the
// board, so scoring distinct cells concurrently is safe as long as nobody
// writes to the board at the same time.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"github.com/domino14/gomoku/board"
)

// MaxScore is returned for a move that wins on the spot.
const MaxScore = math.MaxInt

// Offensive tier bonuses, per direction. Only the first matching tier
// applies.
const (
	OpenNearWin     = 50
	OpenBuilding    = 20
	SemiOpenNearWin = 30
	SemiOpenBuild   = 10
)

// Defensive bonuses, per direction, for cells that cut an opponent run.
const (
	BlockOpenNearWin     = 40
	BlockSemiOpenNearWin = 15
	// BlockWin is added when the opponent would win on this cell. It stays
	// below MaxScore so that a winning move is never traded for a block.
	BlockWin = MaxScore / 2
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Move is a scored candidate cell.
type Move struct {
	Row   int
	Col   int
	Score int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d) score %d", m.Row, m.Col, m.Score)
}

func validate(color board.Color, winLength int) error {
	if winLength <= 0 {
		return fmt.Errorf("%w: win length must be positive, got %d", board.ErrInvalidConfig, winLength)
	}
	if !color.Valid() {
		return fmt.Errorf("%w: %v", board.ErrInvalidColor, color)
	}
	return nil
}

// Evaluate scores placing color at (row, col). A winning placement scores
// MaxScore; otherwise the score is the sum of the offensive tiers for the
// mover and the defensive tiers for the opponent at the same cell.
func Evaluate(b *board.Board, row, col int, color board.Color, winLength int) (int, error) {
	if err := validate(color, winLength); err != nil {
		return 0, err
	}
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", board.ErrOutOfBounds, row, col)
	}
	if !b.IsEmpty(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", board.ErrCellOccupied, row, col)
	}
	return evaluate(b, row, col, color, winLength), nil
}

// evaluate assumes its arguments were validated.
func evaluate(b *board.Board, row, col int, color board.Color, winLength int) int {
	if b.WouldAlign(row, col, color, winLength) {
		return MaxScore
	}
	return saturatingAdd(offense(b, row, col, color, winLength),
		defense(b, row, col, color.Opponent(), winLength))
}

func offense(b *board.Board, row, col int, color board.Color, winLength int) int {
	score := 0
	for _, d := range board.Directions {
		seq := Classify(b, row, col, color, d)
		switch {
		case seq.IsOpen(winLength - 1):
			score += OpenNearWin
		case seq.IsOpen(winLength - 2):
			score += OpenBuilding
		case seq.IsSemiOpen(winLength - 1):
			score += SemiOpenNearWin
		case seq.IsSemiOpen(winLength - 2):
			score += SemiOpenBuild
		}
	}
	return score
}

func defense(b *board.Board, row, col int, opp board.Color, winLength int) int {
	score := 0
	if b.WouldAlign(row, col, opp, winLength) {
		score = BlockWin
	}
	for _, d := range board.Directions {
		seq := Classify(b, row, col, opp, d)
		switch {
		case seq.IsOpen(winLength - 1):
			score = saturatingAdd(score, BlockOpenNearWin)
		case seq.IsSemiOpen(winLength - 1):
			score = saturatingAdd(score, BlockSemiOpenNearWin)
		}
	}
	return score
}

// saturatingAdd adds two non-negative scores, clamping at MaxScore.
func saturatingAdd(a, b int) int {
	if a > MaxScore-b {
		return MaxScore
	}
	return a + b
}

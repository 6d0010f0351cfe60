package turnplayer

import (
	"context"

	"github.com/domino14/gomoku/ai/evaluator"
	"github.com/domino14/gomoku/board"
)

// A Player decides where to put its next stone. Human players are driven by
// the shell, so only computer players implement this.
type Player interface {
	SelectMove(ctx context.Context, b *board.Board) (evaluator.Move, error)
	Color() board.Color
	Name() string
}

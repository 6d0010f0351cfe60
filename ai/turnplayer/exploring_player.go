package turnplayer

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/gomoku/ai/evaluator"
	"github.com/domino14/gomoku/board"
)

// ExploringTurnPlayer plays one of the evaluator's best-scoring moves, picked
// at random when several share the top score. It never plays a move the
// evaluator rates lower than its choice.
type ExploringTurnPlayer struct {
	color     board.Color
	winLength int

	mu  sync.Mutex
	rng *frand.RNG
}

// NewExploringTurnPlayer returns an exploring bot. A zero seed draws one from
// system entropy; any other seed gives a repeatable sequence of choices.
func NewExploringTurnPlayer(color board.Color, winLength int, seed uint64) (*ExploringTurnPlayer, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("%w: %v", board.ErrInvalidColor, color)
	}
	if winLength <= 0 {
		return nil, fmt.Errorf("%w: win length %d", board.ErrInvalidConfig, winLength)
	}
	var rng *frand.RNG
	if seed == 0 {
		rng = frand.New()
	} else {
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:], seed)
		rng = frand.NewCustom(s[:], 1024, 12)
	}
	return &ExploringTurnPlayer{color: color, winLength: winLength, rng: rng}, nil
}

func (p *ExploringTurnPlayer) Color() board.Color {
	return p.color
}

func (p *ExploringTurnPlayer) Name() string {
	return "exploring-bot"
}

func (p *ExploringTurnPlayer) SelectMove(ctx context.Context, b *board.Board) (evaluator.Move, error) {
	if err := ctx.Err(); err != nil {
		return evaluator.Move{}, err
	}
	moves, err := evaluator.ScoreCandidates(b, p.color, p.winLength)
	if err != nil {
		return evaluator.Move{}, err
	}
	if len(moves) == 0 {
		return evaluator.Move{}, evaluator.ErrNoLegalMoves
	}
	top := lo.MaxBy(moves, func(a, b evaluator.Move) bool { return a.Score > b.Score })
	ties := lo.Filter(moves, func(m evaluator.Move, _ int) bool { return m.Score == top.Score })

	p.mu.Lock()
	m := ties[p.rng.Intn(len(ties))]
	p.mu.Unlock()

	log.Debug().Int("ties", len(ties)).Int("row", m.Row).Int("col", m.Col).
		Int("score", m.Score).Stringer("color", p.color).Msg("exploring-bot-move")
	return m, nil
}

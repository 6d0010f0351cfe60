package turnplayer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/evaluator"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/cache"
	"github.com/domino14/gomoku/zobrist"
)

// BotTurnPlayer always plays the evaluator's choice, so the same position
// always gets the same reply.
type BotTurnPlayer struct {
	color     board.Color
	winLength int
	threads   int
	useCache  bool
}

func NewBotTurnPlayer(color board.Color, winLength, threads int, useCache bool) (*BotTurnPlayer, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("%w: %v", board.ErrInvalidColor, color)
	}
	if winLength <= 0 || threads < 1 {
		return nil, fmt.Errorf("%w: win length %d, threads %d", board.ErrInvalidConfig, winLength, threads)
	}
	return &BotTurnPlayer{color: color, winLength: winLength, threads: threads, useCache: useCache}, nil
}

func (p *BotTurnPlayer) Color() board.Color {
	return p.color
}

func (p *BotTurnPlayer) Name() string {
	return "bot"
}

func (p *BotTurnPlayer) SelectMove(ctx context.Context, b *board.Board) (evaluator.Move, error) {
	if !p.useCache {
		return p.choose(ctx, b)
	}
	z := zobrist.ForDim(b.Size())
	key := cache.DecisionKey(b.Size(), z.Hash(b), p.color, p.winLength)
	if obj, ok := cache.Lookup(key); ok {
		return obj.(evaluator.Move), nil
	}
	// Decisions are computed outside the cache lock so that concurrent games
	// do not wait on each other.
	m, err := p.choose(ctx, b)
	if err != nil {
		return evaluator.Move{}, err
	}
	cache.Store(key, m)
	log.Debug().Int("row", m.Row).Int("col", m.Col).Int("score", m.Score).
		Stringer("color", p.color).Msg("bot-move")
	return m, nil
}

func (p *BotTurnPlayer) choose(ctx context.Context, b *board.Board) (evaluator.Move, error) {
	if p.threads > 1 {
		return evaluator.ChooseMoveParallel(ctx, b, p.color, p.winLength, p.threads)
	}
	return evaluator.ChooseMove(b, p.color, p.winLength)
}

package evaluator

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gomoku/board"
)

// Candidates returns every empty cell that touches at least one stone, in
// row-major order. Scores are left at zero.
func Candidates(b *board.Board) []Move {
	size := b.Size()
	cands := []Move{}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.IsEmpty(row, col) && b.IsAdjacentToOccupied(row, col) {
				cands = append(cands, Move{Row: row, Col: col})
			}
		}
	}
	return cands
}

// ScoreCandidates evaluates every candidate cell for color. The result is
// in row-major order.
func ScoreCandidates(b *board.Board, color board.Color, winLength int) ([]Move, error) {
	if err := validate(color, winLength); err != nil {
		return nil, err
	}
	return lo.Map(Candidates(b), func(m Move, _ int) Move {
		m.Score = evaluate(b, m.Row, m.Col, color, winLength)
		return m
	}), nil
}

// best returns the first move with the strictly greatest score.
func best(moves []Move) (Move, error) {
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMoves
	}
	return lo.MaxBy(moves, func(a, b Move) bool {
		return a.Score > b.Score
	}), nil
}

// ChooseMove picks the highest-scoring candidate for color. Ties go to the
// first candidate in row-major order, so the result is reproducible.
func ChooseMove(b *board.Board, color board.Color, winLength int) (Move, error) {
	moves, err := ScoreCandidates(b, color, winLength)
	if err != nil {
		return Move{}, err
	}
	m, err := best(moves)
	if err != nil {
		return Move{}, err
	}
	log.Debug().Int("candidates", len(moves)).Stringer("color", color).
		Int("row", m.Row).Int("col", m.Col).Int("score", m.Score).Msg("chose-move")
	return m, nil
}

// ChooseMoveParallel returns the same move as ChooseMove but scores the
// candidates on up to threads goroutines. The board must not be written to
// until it returns.
func ChooseMoveParallel(ctx context.Context, b *board.Board, color board.Color,
	winLength int, threads int) (Move, error) {

	if err := validate(color, winLength); err != nil {
		return Move{}, err
	}
	if threads < 1 {
		return Move{}, fmt.Errorf("%w: threads must be positive, got %d", board.ErrInvalidConfig, threads)
	}
	moves := Candidates(b)
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMoves
	}

	chunk := (len(moves) + threads - 1) / threads
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(moves); start += chunk {
		part := moves[start:min(start+chunk, len(moves))]
		g.Go(func() error {
			for i := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				part[i].Score = evaluate(b, part[i].Row, part[i].Col, color, winLength)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Move{}, err
	}
	return best(moves)
}

// TopMoves returns up to n moves sorted by descending score. Equal scores
// keep their row-major order.
func TopMoves(moves []Move, n int) []Move {
	sorted := make([]Move, len(moves))
	copy(sorted, moves)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n > len(sorted) || n < 0 {
		n = len(sorted)
	}
	return sorted[:n]
}

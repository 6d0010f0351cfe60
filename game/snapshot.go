package game

import (
	"fmt"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/zobrist"
)

// A Snapshot is everything needed to rebuild a game. Placements are in the
// coordinates of a board of BoardSize.
type Snapshot struct {
	ID         string
	Rules      Rules
	Players    [2]PlayerInfo
	Pieces     [2]int
	OnTurn     int
	State      PlayState
	Winner     int
	BoardSize  int
	Placements []board.Stone
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:         g.uid,
		Rules:      g.rules,
		OnTurn:     g.onturn,
		State:      g.playing,
		Winner:     g.winner,
		Placements: g.History(),
	}
	if g.board != nil {
		s.BoardSize = g.board.Size()
	}
	for i, p := range g.players {
		s.Players[i] = p.PlayerInfo
		s.Pieces[i] = p.pieces
	}
	return s
}

// Restore rebuilds a game by replaying the snapshot's placements onto an
// empty board.
func Restore(s Snapshot) (*Game, error) {
	g, err := NewGame(s.Rules, s.Players[:])
	if err != nil {
		return nil, err
	}
	if s.ID != "" {
		g.uid = s.ID
	}
	if s.OnTurn != 0 && s.OnTurn != 1 {
		return nil, fmt.Errorf("%w: player on turn %d", ErrInvalidPlayers, s.OnTurn)
	}
	if s.Winner != NoWinner && s.Winner != 0 && s.Winner != 1 {
		return nil, fmt.Errorf("%w: winner %d", ErrInvalidPlayers, s.Winner)
	}
	if s.State == StateNotStarted {
		return g, nil
	}
	if s.BoardSize < s.Rules.BoardSize {
		return nil, fmt.Errorf("%w: board size %d is smaller than the rules allow", ErrInvalidRules, s.BoardSize)
	}
	b, err := board.Replay(s.BoardSize, s.Placements)
	if err != nil {
		return nil, err
	}
	for i, p := range g.players {
		if s.Pieces[i] < 0 {
			return nil, fmt.Errorf("%w: negative piece count for %s", ErrInvalidPlayers, p.Nickname)
		}
		p.pieces = s.Pieces[i]
	}
	// the first placement is the free opening stone
	for i, st := range s.Placements {
		if i == 0 {
			continue
		}
		for _, p := range g.players {
			if p.Color == st.Color {
				p.placed++
			}
		}
	}
	g.board = b
	g.history = append(g.history[:0], s.Placements...)
	g.hash = zobrist.ForDim(b.Size()).Hash(b)
	g.onturn = s.OnTurn
	g.playing = s.State
	g.winner = s.Winner
	if g.playing == StatePlaying && g.players[g.onturn].pieces <= 0 {
		// the skip rule only runs after a placement, so hand the turn over
		// here or the game could never continue
		if g.players.outOfPieces() {
			return nil, fmt.Errorf("%w: game in progress but nobody has pieces left", ErrInvalidPlayers)
		}
		g.onturn = otherPlayer(g.onturn)
	}
	return g, nil
}

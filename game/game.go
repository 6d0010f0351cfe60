// Package game runs an n-in-a-row game between two players: turn order,
// piece counts, the adjacency rule, win and draw detection, and board
// expansion. It doesn't care who the players are; the shell and the
// automatic runner drive it.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/zobrist"
)

var (
	ErrGameNotPlaying = errors.New("game is not in progress")
	ErrNotAdjacent    = errors.New("stone must touch an existing stone")
	ErrNoPiecesLeft   = errors.New("player has no pieces left")
	ErrInvalidPlayers = errors.New("invalid players")
)

type PlayState int

const (
	StateNotStarted PlayState = iota
	StatePlaying
	StateGameOver
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "not-started"
}

// NoWinner is the Winner of a game that is unfinished or drawn.
const NoWinner = -1

// Turn describes the outcome of a single placement.
type Turn struct {
	Player int
	Stone  board.Stone
	Won    bool
	Draw   bool
	// ExpandedTo is the new board size if this placement filled the board
	// and the board grew.
	ExpandedTo int
	// Skipped is set when the next player has no pieces and the same
	// player moves again.
	Skipped bool
}

type Game struct {
	uid     string
	rules   Rules
	board   *board.Board
	players playerStates
	onturn  int
	playing PlayState
	winner  int

	// history holds every placement in order, in the coordinates of the
	// current board. It is shifted when the board expands so it can always
	// be replayed onto a board of the current size.
	history []board.Stone
	hash    uint64
}

// NewGame creates a game that has not started yet. players[0] always moves
// first.
func NewGame(rules Rules, players []PlayerInfo) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalidPlayers, len(players))
	}
	if !players[0].Color.Valid() || !players[1].Color.Valid() ||
		players[0].Color == players[1].Color {
		return nil, fmt.Errorf("%w: players need distinct colors", ErrInvalidPlayers)
	}
	g := &Game{
		uid:    uuid.NewString(),
		rules:  rules,
		winner: NoWinner,
	}
	for i := range players {
		g.players[i] = &playerState{PlayerInfo: players[i], pieces: rules.PiecesPerPlayer}
	}
	return g, nil
}

// StartGame clears the board, refills both players' pieces, and puts the
// first player's opening stone in the center. The opening stone does not
// use up a piece. The second player is then on turn.
func (g *Game) StartGame() {
	// Rules were validated in NewGame so the size is always good.
	g.board, _ = board.New(g.rules.BoardSize)
	if len(g.history) > 0 {
		// a restart is a new game
		g.uid = uuid.NewString()
	}
	g.history = g.history[:0]
	g.hash = 0
	g.winner = NoWinner
	for _, p := range g.players {
		p.pieces = g.rules.PiecesPerPlayer
		p.placed = 0
	}
	r, c := g.board.Center()
	g.place(board.NewStone(g.players[0].Color, r, c))
	g.onturn = 1
	g.playing = StatePlaying
	log.Debug().Str("uid", g.uid).Int("size", g.rules.BoardSize).
		Int("win-length", g.rules.WinLength).Msg("game-started")
}

func (g *Game) place(s board.Stone) {
	// callers check legality first
	if err := g.board.Place(s); err != nil {
		panic(err)
	}
	g.history = append(g.history, s)
	g.hash = zobrist.ForDim(g.board.Size()).AddStone(g.hash, s)
}

// PlayMove puts a stone of the player on turn at (row, col).
func (g *Game) PlayMove(row, col int) (*Turn, error) {
	if g.playing != StatePlaying {
		return nil, ErrGameNotPlaying
	}
	p := g.players[g.onturn]
	if p.pieces <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPiecesLeft, p.Nickname)
	}
	if !g.board.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", board.ErrOutOfBounds, row, col)
	}
	if !g.board.IsEmpty(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", board.ErrCellOccupied, row, col)
	}
	if !g.board.IsAdjacentToOccupied(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrNotAdjacent, row, col)
	}

	s := board.NewStone(p.Color, row, col)
	won := g.board.WouldAlign(row, col, p.Color, g.rules.WinLength)
	g.place(s)
	p.pieces--
	p.placed++

	turn := &Turn{Player: g.onturn, Stone: s}
	log.Debug().Str("player", p.Nickname).Int("row", row).Int("col", col).
		Int("pieces", p.pieces).Msg("played-stone")

	switch {
	case won:
		turn.Won = true
		g.winner = g.onturn
		g.playing = StateGameOver
		log.Info().Str("uid", g.uid).Str("winner", p.Nickname).Msg("game-won")
		return turn, nil
	case g.board.IsFull() && g.rules.Expandable:
		g.expand()
		turn.ExpandedTo = g.board.Size()
	case g.board.IsFull():
		turn.Draw = true
		g.playing = StateGameOver
		log.Info().Str("uid", g.uid).Msg("game-drawn-board-full")
		return turn, nil
	}

	next := otherPlayer(g.onturn)
	switch {
	case g.players.outOfPieces():
		turn.Draw = true
		g.playing = StateGameOver
		log.Info().Str("uid", g.uid).Msg("game-drawn-out-of-pieces")
	case g.players[next].pieces > 0:
		g.onturn = next
	default:
		turn.Skipped = true
		log.Debug().Str("player", g.players[next].Nickname).Msg("no-pieces-skipping-turn")
	}
	return turn, nil
}

// expand grows the board to 2n-1 and hands out another round of pieces.
func (g *Game) expand() {
	newSize := g.board.Size()*2 - 1
	nb, err := g.board.Expand(newSize)
	if err != nil {
		// newSize is always odd and larger
		panic(err)
	}
	off := (newSize - g.board.Size()) / 2
	for i, s := range g.history {
		g.history[i] = board.NewStone(s.Color, s.Row+off, s.Col+off)
	}
	g.board = nb
	g.hash = zobrist.ForDim(newSize).Hash(nb)
	for _, p := range g.players {
		p.pieces += g.rules.PiecesPerPlayer
	}
	log.Info().Str("uid", g.uid).Int("size", newSize).
		Int("extra-pieces", g.rules.PiecesPerPlayer).Msg("board-expanded")
}

// Resign ends the game in the opponent's favor.
func (g *Game) Resign() error {
	if g.playing != StatePlaying {
		return ErrGameNotPlaying
	}
	g.winner = otherPlayer(g.onturn)
	g.playing = StateGameOver
	return nil
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) NickOnTurn() string {
	return g.players[g.onturn].Nickname
}

func (g *Game) ColorOnTurn() board.Color {
	return g.players[g.onturn].Color
}

func (g *Game) PlayerInfo(idx int) PlayerInfo {
	return g.players[idx].PlayerInfo
}

func (g *Game) PiecesFor(idx int) int {
	return g.players[idx].pieces
}

// Winner is the index of the winning player, or NoWinner.
func (g *Game) Winner() int {
	return g.winner
}

// History returns a copy of the placements so far.
func (g *Game) History() []board.Stone {
	h := make([]board.Stone, len(g.history))
	copy(h, g.history)
	return h
}

// Turn is the number of stones placed, including the opening stone.
func (g *Game) Turn() int {
	return len(g.history)
}

// Hash is the zobrist hash of the current position.
func (g *Game) Hash() uint64 {
	return g.hash
}

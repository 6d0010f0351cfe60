// Package automatic plays computer-vs-computer games, one at a time or many
// in parallel, and collects results.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/turnplayer"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/game"
)

// Result is the outcome of one finished game.
type Result struct {
	GameID string
	// Winner is the index of the winning player or game.NoWinner.
	Winner      int
	WinnerColor board.Color
	Stones      int
	StartSize   int
	FinalSize   int
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game      *game.Game
	rules     game.Rules
	aiplayers [2]turnplayer.Player
	logchan   chan string
}

// NewGameRunner sets up a runner for two bots. aiplayers[0] plays first.
// If logchan is not nil every placement is sent to it as a CSV line.
func NewGameRunner(logchan chan string, rules game.Rules, aiplayers [2]turnplayer.Player) (*GameRunner, error) {
	players := make([]game.PlayerInfo, 2)
	for i, p := range aiplayers {
		players[i] = game.PlayerInfo{
			Nickname: fmt.Sprintf("%s-%d", p.Name(), i+1),
			Color:    p.Color(),
			Kind:     game.Bot,
		}
	}
	g, err := game.NewGame(rules, players)
	if err != nil {
		return nil, err
	}
	return &GameRunner{game: g, rules: rules, aiplayers: aiplayers, logchan: logchan}, nil
}

func (r *GameRunner) StartGame() {
	r.game.StartGame()
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayBestTurn asks the bot on turn for a move and plays it.
func (r *GameRunner) PlayBestTurn(ctx context.Context) (*game.Turn, error) {
	playerIdx := r.game.PlayerOnTurn()
	m, err := r.aiplayers[playerIdx].SelectMove(ctx, r.game.Board())
	if err != nil {
		return nil, err
	}
	nickOnTurn := r.game.NickOnTurn()
	turn, err := r.game.PlayMove(m.Row, m.Col)
	if err != nil {
		return nil, err
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v\n",
			r.game.Uid(),
			r.game.Turn(),
			nickOnTurn,
			turn.Stone.Color,
			m.Row,
			m.Col,
			m.Score,
			r.game.PiecesFor(playerIdx))
	}
	return turn, nil
}

// PlayFullGame starts a fresh game and plays it to the end.
func (r *GameRunner) PlayFullGame(ctx context.Context) (Result, error) {
	r.StartGame()
	for r.game.Playing() == game.StatePlaying {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := r.PlayBestTurn(ctx); err != nil {
			return Result{}, err
		}
	}
	res := Result{
		GameID:    r.game.Uid(),
		Winner:    r.game.Winner(),
		Stones:    r.game.Turn(),
		StartSize: r.rules.BoardSize,
		FinalSize: r.game.Board().Size(),
	}
	if res.Winner != game.NoWinner {
		res.WinnerColor = r.game.PlayerInfo(res.Winner).Color
	}
	log.Debug().Str("uid", res.GameID).Int("winner", res.Winner).Int("stones", res.Stones).
		Msg("game-over")
	return res, nil
}

package automatic

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/ai/turnplayer"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/game"
)

var smallRules = game.Rules{BoardSize: 7, WinLength: 4, PiecesPerPlayer: 20}

func deterministicBots(t *testing.T) [2]turnplayer.Player {
	t.Helper()
	p1, err := turnplayer.NewBotTurnPlayer(board.Dark, smallRules.WinLength, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := turnplayer.NewBotTurnPlayer(board.Light, smallRules.WinLength, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	return [2]turnplayer.Player{p1, p2}
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigBoardSize, smallRules.BoardSize)
	cfg.Set(config.ConfigWinLength, smallRules.WinLength)
	cfg.Set(config.ConfigPieces, smallRules.PiecesPerPlayer)
	cfg.Set(config.ConfigBotExplore, true)
	cfg.Set(config.ConfigBotSeed, 99)
	return cfg
}

func TestPlayFullGame(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 1000)
	r, err := NewGameRunner(logchan, smallRules, deterministicBots(t))
	is.NoErr(err)

	res, err := r.PlayFullGame(context.Background())
	is.NoErr(err)
	is.Equal(r.Game().Playing(), game.StateGameOver)
	is.True(res.Stones > 1)
	is.Equal(res.Stones, len(r.Game().History()))
	is.Equal(res.StartSize, 7)
	is.Equal(res.FinalSize, 7)
	if res.Winner != game.NoWinner {
		is.Equal(res.WinnerColor, r.Game().PlayerInfo(res.Winner).Color)
	}
	// one log line per placement after the opening stone
	is.Equal(len(logchan), res.Stones-1)
	line := <-logchan
	is.True(strings.HasPrefix(line, res.GameID+",2,"))

	// deterministic bots replay the same game
	again, err := r.PlayFullGame(context.Background())
	is.NoErr(err)
	is.Equal(again.Stones, res.Stones)
	is.Equal(again.Winner, res.Winner)
	is.True(again.GameID != res.GameID)
}

func TestPlayFullGameCanceled(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, smallRules, deterministicBots(t))
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.PlayFullGame(ctx)
	is.True(errors.Is(err, context.Canceled))
}

func TestNewGameRunnerRejectsSameColors(t *testing.T) {
	is := is.New(t)
	bots := deterministicBots(t)
	bots[1] = bots[0]
	_, err := NewGameRunner(nil, smallRules, bots)
	is.True(errors.Is(err, game.ErrInvalidPlayers))
}

func TestStartCompVComp(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	summary, err := StartCompVComp(context.Background(), smallConfig(), 8, 3, &buf)
	is.NoErr(err)
	is.Equal(summary.Games, 8)
	is.Equal(summary.DarkWins+summary.LightWins+summary.Draws, 8)
	is.Equal(len(summary.Lengths), 8)
	is.Equal(CVCCounter.Value(), int64(8))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(lines[0]+"\n", logHeader)
	total := 0
	for _, l := range summary.Lengths {
		total += int(l) - 1
	}
	is.Equal(len(lines)-1, total)
	is.True(strings.Contains(summary.String(), "Games played: 8"))
}

func TestStartCompVCompIsReproducible(t *testing.T) {
	is := is.New(t)
	s1, err := StartCompVComp(context.Background(), smallConfig(), 6, 2, nil)
	is.NoErr(err)
	s2, err := StartCompVComp(context.Background(), smallConfig(), 6, 4, nil)
	is.NoErr(err)
	is.Equal(s1.Lengths, s2.Lengths)
	is.Equal(s1.DarkWins, s2.DarkWins)
}

func TestStartCompVCompBadArgs(t *testing.T) {
	is := is.New(t)
	_, err := StartCompVComp(context.Background(), smallConfig(), 5, 0, nil)
	is.True(errors.Is(err, board.ErrInvalidConfig))

	cfg := smallConfig()
	cfg.Set(config.ConfigBoardSize, 8)
	_, err = StartCompVComp(context.Background(), cfg, 5, 1, nil)
	is.True(errors.Is(err, game.ErrInvalidRules))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = StartCompVComp(ctx, smallConfig(), 5, 2, nil)
	is.True(errors.Is(err, context.Canceled))
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	s := Summarize([]Result{
		{Winner: 0, WinnerColor: board.Dark, Stones: 10, StartSize: 7, FinalSize: 7},
		{Winner: 1, WinnerColor: board.Light, Stones: 20, StartSize: 7, FinalSize: 13},
		{Winner: game.NoWinner, Stones: 30, StartSize: 7, FinalSize: 7},
	})
	is.Equal(s.Games, 3)
	is.Equal(s.DarkWins, 1)
	is.Equal(s.LightWins, 1)
	is.Equal(s.Draws, 1)
	is.Equal(s.Expanded, 1)
	is.Equal(s.MeanStones, 20.0)
	is.Equal(s.StdevStones, 10.0)
	out := s.String()
	is.True(strings.Contains(out, "Dark wins:  1"))
	is.True(strings.Contains(out, "histogram"))

	empty := Summarize(nil)
	is.Equal(empty.Games, 0)
	is.Equal(empty.String(), "Games played: 0\n")

	one := Summarize([]Result{{Winner: 0, WinnerColor: board.Dark, Stones: 5}})
	is.Equal(one.MeanStones, 5.0)
	is.Equal(one.StdevStones, 0.0)
}

package automatic

// Data collection for automatic games. Allow computer vs computer games, etc.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gomoku/ai/turnplayer"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/game"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

	running atomic.Bool
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

const logHeader = "gameID,stone,player,color,row,col,score,piecesleft\n"

// botsFor builds the two players for one automatic game. With a fixed seed
// every game gets its own derived seed so that a batch is reproducible.
func botsFor(cfg *config.Config, winLength int, gameIdx int) ([2]turnplayer.Player, error) {
	var bots [2]turnplayer.Player
	seed := cfg.GetUint64(config.ConfigBotSeed)
	for i, color := range []board.Color{board.Dark, board.Light} {
		var err error
		if cfg.GetBool(config.ConfigBotExplore) {
			var s uint64
			if seed != 0 {
				s = seed + uint64(gameIdx)*2 + uint64(i)
			}
			bots[i], err = turnplayer.NewExploringTurnPlayer(color, winLength, s)
		} else {
			bots[i], err = turnplayer.NewBot(cfg, color, winLength)
		}
		if err != nil {
			return bots, err
		}
	}
	return bots, nil
}

// StartCompVComp plays numGames bot-vs-bot games on up to threads
// goroutines and writes one CSV line per placement to logw (which may be
// nil). It blocks until every game is done or ctx is canceled.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	logw io.Writer) (*Summary, error) {

	if threads < 1 || numGames < 0 {
		return nil, fmt.Errorf("%w: %d games on %d threads", board.ErrInvalidConfig, numGames, threads)
	}
	rules := game.RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if !running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer running.Store(false)
	if !cfg.GetBool(config.ConfigBotExplore) {
		log.Warn().Msg("bots are deterministic; every automatic game will be the same")
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	var logChan chan string
	var logDone sync.WaitGroup
	if logw != nil {
		logChan = make(chan string, 100)
		logDone.Add(1)
		go func() {
			defer logDone.Done()
			io.WriteString(logw, logHeader)
			for msg := range logChan {
				io.WriteString(logw, msg)
			}
			log.Debug().Msg("exiting turn logger goroutine")
		}()
	}

	jobs := make(chan int, 100)
	results := make([]Result, numGames)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			for idx := range jobs {
				bots, err := botsFor(cfg, rules.WinLength, idx)
				if err != nil {
					return err
				}
				r, err := NewGameRunner(logChan, rules, bots)
				if err != nil {
					return err
				}
				res, err := r.PlayFullGame(gctx)
				if err != nil {
					return err
				}
				results[idx] = res
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	if logChan != nil {
		close(logChan)
		logDone.Wait()
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", numGames).Msg("all games finished")
	return Summarize(results), nil
}

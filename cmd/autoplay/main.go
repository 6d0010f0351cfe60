package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/config"
)

func run(ctx context.Context, cfg *config.Config) error {
	var logw io.Writer
	if logfile := cfg.GetString(config.ConfigLogFile); logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			return fmt.Errorf("could not create log file: %w", err)
		}
		defer f.Close()
		logw = f
	}

	games := cfg.GetInt(config.ConfigAutoplayGames)
	threads := cfg.GetInt(config.ConfigAutoplayThreads)
	log.Info().Int("games", games).Int("threads", threads).
		Int("board-size", cfg.GetInt(config.ConfigBoardSize)).
		Int("win-length", cfg.GetInt(config.ConfigWinLength)).Msg("autoplay-starting")

	summary, err := automatic.StartCompVComp(ctx, cfg, games, threads, logw)
	if err != nil {
		return err
	}
	fmt.Print(summary.String())
	return nil
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("autoplay-failed")
		os.Exit(1)
	}
}

package config

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigBoardSize), 15)
	is.Equal(cfg.GetInt(ConfigWinLength), 4)
	is.Equal(cfg.GetInt(ConfigPieces), 60)
	is.Equal(cfg.GetBool(ConfigExpandable), false)
	is.Equal(cfg.GetBool(ConfigBotCache), true)
	is.Equal(cfg.GetInt(ConfigBotThreads), 1)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"--board-size", "19", "--win-length=5", "--expandable", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigBoardSize), 19)
	is.Equal(cfg.GetInt(ConfigWinLength), 5)
	is.True(cfg.GetBool(ConfigExpandable))
	is.True(cfg.GetBool(ConfigDebug))
	// untouched keys keep their defaults
	is.Equal(cfg.GetInt(ConfigPieces), 60)
	is.Equal(len(cfg.Args()), 0)
}

func TestLoadPositionalArgs(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"--pieces", "30", "autoplay", "-games", "5"}))
	is.Equal(cfg.GetInt(ConfigPieces), 30)
	is.Equal(cfg.Args(), []string{"autoplay", "-games", "5"})
}

func TestLoadEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("GOMOKU_PIECES", "12")
	t.Setenv("GOMOKU_WIN_LENGTH", "3")
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"--win-length", "6"}))
	is.Equal(cfg.GetInt(ConfigPieces), 12)
	// the flag beats the environment
	is.Equal(cfg.GetInt(ConfigWinLength), 6)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}

func TestSaveDir(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.True(cfg.SaveDir() != "")
	cfg.Set(ConfigSaveDir, "/tmp/games")
	is.Equal(cfg.SaveDir(), "/tmp/games")
}

func TestLoadLogFile(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"--logfile=/tmp/games.csv", "--autoplay-games", "3"}))
	is.Equal(cfg.GetString(ConfigLogFile), "/tmp/games.csv")
	is.Equal(cfg.GetInt(ConfigAutoplayGames), 3)
}

func TestLoadHelp(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"--help"})
	is.True(errors.Is(err, pflag.ErrHelp))
}

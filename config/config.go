package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigBoardSize       = "board-size"
	ConfigWinLength       = "win-length"
	ConfigPieces          = "pieces"
	ConfigExpandable      = "expandable"
	ConfigBotThreads      = "bot-threads"
	ConfigBotSeed         = "bot-seed"
	ConfigBotExplore      = "bot-explore"
	ConfigBotCache        = "bot-cache"
	ConfigSaveDir         = "save-dir"
	ConfigHistoryFile     = "history-file"
	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigLogFile         = "logfile"
)

const appName = "gomoku"

type Config struct {
	*viper.Viper
	// args holds the positional arguments left over after Load parsed
	// the flags.
	args []string
}

// DefaultConfig returns a config holding only the built-in defaults. It
// does not look at flags or the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigBoardSize, 15)
	c.SetDefault(ConfigWinLength, 4)
	c.SetDefault(ConfigPieces, 60)
	c.SetDefault(ConfigExpandable, false)
	c.SetDefault(ConfigBotThreads, 1)
	c.SetDefault(ConfigBotSeed, 0)
	c.SetDefault(ConfigBotExplore, false)
	c.SetDefault(ConfigBotCache, true)
	c.SetDefault(ConfigSaveDir, "")
	c.SetDefault(ConfigHistoryFile, "")
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayThreads, 4)
}

// Load reads command-line flags, then GOMOKU_* environment variables, on
// top of the defaults. Flags win over the environment.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	// everything after the first positional argument is a shell command
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigBoardSize, 15, "side length of a new board (odd)")
	fs.Int(ConfigWinLength, 4, "stones in a row needed to win")
	fs.Int(ConfigPieces, 60, "stones each player starts with")
	fs.Bool(ConfigExpandable, false, "grow the board instead of drawing when it fills up")
	fs.Int(ConfigBotThreads, 1, "goroutines used to score bot candidates")
	fs.Uint64(ConfigBotSeed, 0, "seed for the exploring bot (0 means random)")
	fs.Bool(ConfigBotExplore, false, "let the bot pick randomly among equally good moves")
	fs.Bool(ConfigBotCache, true, "memoize bot decisions by position")
	fs.String(ConfigSaveDir, "", "directory for saved games (defaults to the XDG data dir)")
	fs.String(ConfigHistoryFile, "", "shell history file (defaults to the XDG state dir)")
	fs.Int(ConfigAutoplayGames, 100, "number of bot-vs-bot games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "concurrent autoplay games")
	fs.String(ConfigLogFile, "", "write a CSV line per autoplay placement to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix(appName)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	// Only flags that were actually given override env and defaults.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if err := c.BindPFlag(f.Name, f); err != nil {
			bindErr = err
		}
	})
	return bindErr
}

// SaveDir is the configured save directory, or the per-user data dir.
func (c *Config) SaveDir() string {
	if d := c.GetString(ConfigSaveDir); d != "" {
		return d
	}
	return filepath.Join(xdg.DataHome, appName, "games")
}

// HistoryFile is where the shell keeps its readline history.
func (c *Config) HistoryFile() (string, error) {
	if f := c.GetString(ConfigHistoryFile); f != "" {
		return f, nil
	}
	return xdg.StateFile(appName + "/history")
}

// Args returns the non-flag arguments given to Load.
func (c *Config) Args() []string {
	return c.args
}

package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/gomoku/config"
)

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

// settable lists the config keys the set command may change, and how to
// parse a value for each.
type setting struct {
	key   string
	isInt bool
}

var settable = []setting{
	{config.ConfigBoardSize, true},
	{config.ConfigWinLength, true},
	{config.ConfigPieces, true},
	{config.ConfigExpandable, false},
	{config.ConfigBotThreads, true},
	{config.ConfigBotExplore, false},
	{config.ConfigBotSeed, true},
	{config.ConfigBotCache, false},
}

func settingsText(cfg *config.Config) string {
	out := strings.Builder{}
	out.WriteString("Settings (apply to the next new game):\n")
	for _, s := range settable {
		out.WriteString(fmt.Sprintf("  %s: %v\n", s.key, cfg.Get(s.key)))
	}
	return out.String()
}

func setOption(cfg *config.Config, key, value string) (string, error) {
	for _, s := range settable {
		if s.key != key {
			continue
		}
		if s.isInt {
			n, err := strconv.Atoi(value)
			if err != nil {
				return "", fmt.Errorf("%s needs a whole number: %w", key, err)
			}
			if n < 0 {
				return "", fmt.Errorf("%s cannot be negative", key)
			}
			cfg.Set(key, n)
			return strconv.Itoa(n), nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%s needs true or false: %w", key, err)
		}
		cfg.Set(key, b)
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("no such option: %s", key)
}

package turnplayer

import (
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
)

// NewBot builds the computer player the config asks for.
func NewBot(cfg *config.Config, color board.Color, winLength int) (Player, error) {
	if cfg.GetBool(config.ConfigBotExplore) {
		return NewExploringTurnPlayer(color, winLength, cfg.GetUint64(config.ConfigBotSeed))
	}
	return NewBotTurnPlayer(color, winLength, max(cfg.GetInt(config.ConfigBotThreads), 1),
		cfg.GetBool(config.ConfigBotCache))
}

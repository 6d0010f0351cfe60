package game

import (
	"errors"
	"fmt"

	"github.com/domino14/gomoku/config"
)

var ErrInvalidRules = errors.New("invalid game rules")

// Rules are fixed for the life of a game.
type Rules struct {
	BoardSize       int  `yaml:"board_size"`
	WinLength       int  `yaml:"win_length"`
	PiecesPerPlayer int  `yaml:"pieces_per_player"`
	Expandable      bool `yaml:"expandable"`
}

func DefaultRules() Rules {
	return Rules{BoardSize: 15, WinLength: 4, PiecesPerPlayer: 60}
}

// RulesFromConfig reads the board-size, win-length, pieces and expandable
// settings.
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		BoardSize:       cfg.GetInt(config.ConfigBoardSize),
		WinLength:       cfg.GetInt(config.ConfigWinLength),
		PiecesPerPlayer: cfg.GetInt(config.ConfigPieces),
		Expandable:      cfg.GetBool(config.ConfigExpandable),
	}
}

func (r Rules) Validate() error {
	switch {
	case r.BoardSize%2 != 1 || r.BoardSize <= 0:
		return fmt.Errorf("%w: board size must be odd and positive, got %d", ErrInvalidRules, r.BoardSize)
	case r.WinLength <= 2:
		return fmt.Errorf("%w: win length must be more than 2, got %d", ErrInvalidRules, r.WinLength)
	case r.BoardSize < r.WinLength:
		return fmt.Errorf("%w: board size %d is smaller than win length %d", ErrInvalidRules, r.BoardSize, r.WinLength)
	case r.PiecesPerPlayer <= 0:
		return fmt.Errorf("%w: pieces per player must be positive, got %d", ErrInvalidRules, r.PiecesPerPlayer)
	case r.PiecesPerPlayer < r.WinLength:
		return fmt.Errorf("%w: %d pieces cannot make a row of %d", ErrInvalidRules, r.PiecesPerPlayer, r.WinLength)
	}
	return nil
}

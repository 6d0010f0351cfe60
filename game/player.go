package game

import (
	"fmt"
	"strings"

	"github.com/domino14/gomoku/board"
)

type PlayerKind int

const (
	Human PlayerKind = iota
	Bot
)

func (k PlayerKind) String() string {
	if k == Bot {
		return "bot"
	}
	return "human"
}

func PlayerKindFromString(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "human":
		return Human, nil
	case "bot", "computer", "ai":
		return Bot, nil
	}
	return Human, fmt.Errorf("%w: unknown player kind %q", ErrInvalidPlayers, s)
}

type PlayerInfo struct {
	Nickname string
	Color    board.Color
	Kind     PlayerKind
}

type playerState struct {
	PlayerInfo
	pieces int
	placed int
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%3v%-16v %s (%v)  placed: %d  left: %d", onturn, p.Nickname,
		p.Color.Symbol(), p.Kind, p.placed, p.pieces)
}

type playerStates [2]*playerState

func (ps playerStates) outOfPieces() bool {
	return ps[0].pieces <= 0 && ps[1].pieces <= 0
}

func otherPlayer(idx int) int {
	return (idx + 1) % 2
}

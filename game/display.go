package game

import (
	"fmt"
	"strings"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the players and the game status to its right.
func (g *Game) ToDisplayText() string {
	if g.board == nil {
		return "game not started\n"
	}
	bts := strings.Split(g.board.ToDisplayText(), "\n")
	hpadding := 3
	vpadding := 1

	for pi := 0; pi < 2; pi++ {
		addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(g.playing == StatePlaying && g.onturn == pi))
	}
	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Win length: %d", g.rules.WinLength))
	addText(bts, vpadding+4, hpadding, fmt.Sprintf("Stones placed: %d", len(g.history)))
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		addText(bts, vpadding+5, hpadding,
			fmt.Sprintf("Last: %s at (%d, %d)", last.Color.Symbol(), last.Row, last.Col))
	}

	if g.playing == StateGameOver {
		status := "Game over: draw"
		if g.winner != NoWinner {
			status = fmt.Sprintf("Game over: %s wins", g.players[g.winner].Nickname)
		}
		addText(bts, vpadding+7, hpadding, status)
	}
	return strings.Join(bts, "\n")
}

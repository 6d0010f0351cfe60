package automatic

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/game"
)

// Summary aggregates a batch of automatic games.
type Summary struct {
	Games     int
	DarkWins  int
	LightWins int
	Draws     int

	// Expanded counts games that finished on a bigger board than they
	// started on.
	Expanded    int
	MeanStones  float64
	StdevStones float64
	// Lengths holds the number of stones placed in each game.
	Lengths []float64
}

func Summarize(results []Result) *Summary {
	s := &Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	for _, r := range results {
		switch {
		case r.Winner == game.NoWinner:
			s.Draws++
		case r.WinnerColor == board.Dark:
			s.DarkWins++
		default:
			s.LightWins++
		}
		if r.FinalSize > r.StartSize {
			s.Expanded++
		}
	}
	s.Lengths = lo.Map(results, func(r Result, _ int) float64 { return float64(r.Stones) })
	if len(s.Lengths) > 1 {
		s.MeanStones, s.StdevStones = stat.MeanStdDev(s.Lengths, nil)
	} else {
		s.MeanStones = s.Lengths[0]
	}
	return s
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	if s.Games == 0 {
		return sb.String()
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(s.Games) }
	fmt.Fprintf(&sb, "Dark wins:  %d (%.1f%%)\n", s.DarkWins, pct(s.DarkWins))
	fmt.Fprintf(&sb, "Light wins: %d (%.1f%%)\n", s.LightWins, pct(s.LightWins))
	fmt.Fprintf(&sb, "Draws:      %d (%.1f%%)\n", s.Draws, pct(s.Draws))
	if s.Expanded > 0 {
		fmt.Fprintf(&sb, "Games that expanded the board: %d\n", s.Expanded)
	}
	fmt.Fprintf(&sb, "Stones per game: mean %.2f, stdev %.2f\n", s.MeanStones, s.StdevStones)
	sb.WriteString("Game length histogram:\n")
	histogram.Fprint(&sb, histogram.Hist(10, s.Lengths), histogram.Linear(40))
	return sb.String()
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/evaluator"
	"github.com/domino14/gomoku/ai/turnplayer"
	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/game"
	"github.com/domino14/gomoku/gamefile"
)

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err == errNoData {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "aiplay":
		return sc.aiplay(cmd)
	case "gen":
		return sc.gen(cmd)
	case "eval":
		return sc.eval(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "set":
		return sc.set(cmd)
	case "save":
		return sc.save(cmd)
	case "load":
		return sc.load(cmd)
	case "list":
		return sc.list(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "resign":
		return sc.resign(cmd)
	case "help":
		return sc.help(cmd)
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("need a row and a column")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row: %w", err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column: %w", err)
	}
	return row, col, nil
}

// newGame starts a game with the current settings. The first player
// always plays Dark.
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	opponent := cmd.options.String("opponent")
	if opponent == "" {
		opponent = "bot"
	}
	oppKind, err := game.PlayerKindFromString(opponent)
	if err != nil {
		return nil, err
	}
	first := cmd.options.String("first")
	if first == "" {
		first = "me"
	}
	if first != "me" && first != "bot" && first != "them" {
		return nil, fmt.Errorf("-first must be me or %s", opponent)
	}
	oppName := "bot"
	if oppKind == game.Human {
		oppName = "player2"
	}
	me := game.PlayerInfo{Nickname: "you", Kind: game.Human}
	them := game.PlayerInfo{Nickname: oppName, Kind: oppKind}
	players := []game.PlayerInfo{me, them}
	if first != "me" {
		players = []game.PlayerInfo{them, me}
	}
	players[0].Color = board.Dark
	players[1].Color = board.Light

	rules := game.RulesFromConfig(sc.config)
	g, err := game.NewGame(rules, players)
	if err != nil {
		return nil, err
	}
	if err := sc.attach(g); err != nil {
		return nil, err
	}
	g.StartGame()
	log.Debug().Str("uid", g.Uid()).Interface("rules", rules).Msg("new-game")

	if err := sc.botReply(context.Background()); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

// attach makes g the current game and builds a bot for its computer
// player, if it has one.
func (sc *ShellController) attach(g *game.Game) error {
	botIdx := -1
	for i := 0; i < 2; i++ {
		if g.PlayerInfo(i).Kind == game.Bot {
			botIdx = i
			break
		}
	}
	var bot turnplayer.Player
	if botIdx >= 0 {
		var err error
		bot, err = turnplayer.NewBot(sc.config, g.PlayerInfo(botIdx).Color, g.Rules().WinLength)
		if err != nil {
			return err
		}
	}
	sc.game = g
	sc.botIdx = botIdx
	sc.bot = bot
	return nil
}

func describeTurn(g *game.Game, t *game.Turn) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s played %s\n", g.PlayerInfo(t.Player).Nickname, t.Stone)
	if t.ExpandedTo > 0 {
		fmt.Fprintf(&sb, "The board was full and grew to %dx%d\n", t.ExpandedTo, t.ExpandedTo)
	}
	if t.Skipped {
		fmt.Fprintf(&sb, "%s has no pieces left; %s moves again\n",
			g.PlayerInfo(1-t.Player).Nickname, g.PlayerInfo(t.Player).Nickname)
	}
	return sb.String()
}

// botReply lets the bot move for as long as it is on turn.
func (sc *ShellController) botReply(ctx context.Context) error {
	for sc.IsBotOnTurn() {
		t, err := sc.botMove(ctx)
		if err != nil {
			return err
		}
		sc.showMessage(strings.TrimRight(describeTurn(sc.game, t), "\n"))
	}
	return nil
}

func (sc *ShellController) botMove(ctx context.Context) (*game.Turn, error) {
	m, err := sc.bot.SelectMove(ctx, sc.game.Board())
	if err != nil {
		return nil, err
	}
	log.Debug().Int("row", m.Row).Int("col", m.Col).Int("score", m.Score).Msg("bot-move")
	return sc.game.PlayMove(m.Row, m.Col)
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	if sc.IsBotOnTurn() {
		return nil, errors.New("it is the bot's turn; use aiplay")
	}
	row, col, err := parseCoords(cmd.args)
	if err != nil {
		return nil, err
	}
	t, err := sc.game.PlayMove(row, col)
	if err != nil {
		return nil, err
	}
	sc.showMessage(strings.TrimRight(describeTurn(sc.game, t), "\n"))
	if err := sc.botReply(context.Background()); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

// aiplay makes the bot move for whoever is on turn.
func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	bot := sc.bot
	if !sc.IsBotOnTurn() {
		var err error
		bot, err = turnplayer.NewBot(sc.config, sc.game.ColorOnTurn(), sc.game.Rules().WinLength)
		if err != nil {
			return nil, err
		}
	}
	m, err := bot.SelectMove(context.Background(), sc.game.Board())
	if err != nil {
		return nil, err
	}
	t, err := sc.game.PlayMove(m.Row, m.Col)
	if err != nil {
		return nil, err
	}
	sc.showMessage(strings.TrimRight(describeTurn(sc.game, t), "\n"))
	if err := sc.botReply(context.Background()); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	n := 10
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	moves, err := evaluator.ScoreCandidates(sc.game.Board(), sc.game.ColorOnTurn(),
		sc.game.Rules().WinLength)
	if err != nil {
		return nil, err
	}
	top := evaluator.TopMoves(moves, n)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Best moves for %s (%d candidates):\n", sc.game.ColorOnTurn(), len(moves))
	fmt.Fprintf(&sb, "%3s %4s %4s %12s\n", "#", "row", "col", "score")
	for i, m := range top {
		fmt.Fprintf(&sb, "%3d %4d %4d %12d\n", i+1, m.Row, m.Col, m.Score)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	row, col, err := parseCoords(cmd.args)
	if err != nil {
		return nil, err
	}
	color := sc.game.ColorOnTurn()
	if c := cmd.options.String("color"); c != "" {
		color, err = board.ColorFromString(c)
		if err != nil {
			return nil, err
		}
	}
	score, err := evaluator.Evaluate(sc.game.Board(), row, col, color, sc.game.Rules().WinLength)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("(%d, %d) for %s: %d", row, col, color, score)), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		return msg(settingsText(sc.config)), nil
	case 1:
		return msg(fmt.Sprintf("%s: %v", cmd.args[0], sc.config.Get(cmd.args[0]))), nil
	}
	v, err := setOption(sc.config, cmd.args[0], cmd.args[1])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s set to %s", cmd.args[0], v)), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("need a name to save the game under")
	}
	if err := gamefile.Save(sc.config.SaveDir(), cmd.args[0], sc.game); err != nil {
		return nil, err
	}
	return msg("saved " + cmd.args[0]), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("need the name of a saved game")
	}
	g, err := gamefile.Load(sc.config.SaveDir(), cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.attach(g); err != nil {
		return nil, err
	}
	return msg(g.ToDisplayText()), nil
}

func (sc *ShellController) list(cmd *shellcmd) (*Response, error) {
	names, err := gamefile.List(sc.config.SaveDir())
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return msg("no saved games"), nil
	}
	return msg(strings.Join(names, "\n")), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	games, err := cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	sc.showMessage(fmt.Sprintf("Playing %d games on %d threads...", games, threads))
	summary, err := automatic.StartCompVComp(context.Background(), sc.config, games, threads, nil)
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) resign(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	if err := sc.game.Resign(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

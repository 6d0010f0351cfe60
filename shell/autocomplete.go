package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/gamefile"
)

type commandMetadata struct {
	Options []string
	Args    []string
}

var commandNames = map[string]commandMetadata{
	"new":      {Options: []string{"-opponent", "-first"}},
	"play":     {},
	"aiplay":   {},
	"gen":      {},
	"eval":     {Options: []string{"-color"}},
	"show":     {},
	"set":      {Args: lo.Map(settable, func(s setting, _ int) string { return s.key })},
	"save":     {},
	"load":     {},
	"list":     {},
	"autoplay": {Options: []string{"-games", "-threads"}},
	"resign":   {},
	"help":     {Args: helpTopics()},
	"exit":     {},
}

var optionValues = map[string][]string{
	"-opponent": {"bot", "human"},
	"-first":    {"me", "bot"},
	"-color":    {"dark", "light"},
}

// ShellCompleter completes command names, option names, fixed option
// values, and saved game names for load.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

func matching(candidates []string, prefix string) [][]rune {
	sort.Strings(candidates)
	var out [][]rune
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) && c != prefix {
			out = append(out, []rune(c[len(prefix):]))
		}
	}
	return out
}

// Do implements readline.AutoCompleter.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	words, err := shellquote.Split(typed)
	if err != nil {
		return nil, 0
	}
	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(typed, " ")) {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return matching(lo.Keys(commandNames), prefix), len([]rune(prefix))
	}

	meta, ok := commandNames[words[0]]
	if !ok {
		return nil, 0
	}
	current := ""
	if !strings.HasSuffix(typed, " ") {
		current = words[len(words)-1]
		words = words[:len(words)-1]
	}
	prev := words[len(words)-1]
	if vals, ok := optionValues[prev]; ok {
		return matching(append([]string(nil), vals...), current), len([]rune(current))
	}
	if strings.HasPrefix(current, "-") {
		return matching(append([]string(nil), meta.Options...), current), len([]rune(current))
	}
	args := meta.Args
	if words[0] == "load" && c.sc != nil && c.sc.config != nil {
		args, _ = gamefile.List(c.sc.config.SaveDir())
	}
	return matching(append([]string(nil), args...), current), len([]rune(current))
}

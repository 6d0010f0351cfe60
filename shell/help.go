package shell

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed helptext/*.txt
var helptext embed.FS

// helpAliases maps commands that share a help page.
var helpAliases = map[string]string{
	"p":      "play",
	"load":   "save",
	"list":   "save",
	"aiplay": "play",
}

func usage(topic string) (string, error) {
	if a, ok := helpAliases[topic]; ok {
		topic = a
	}
	bts, err := fs.ReadFile(helptext, path.Join("helptext", topic+".txt"))
	if err != nil {
		return "", fmt.Errorf("no help for %q", topic)
	}
	return string(bts), nil
}

func helpTopics() []string {
	entries, err := fs.ReadDir(helptext, "helptext")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		t := strings.TrimSuffix(e.Name(), ".txt")
		if t != "main" {
			topics = append(topics, t)
		}
	}
	return topics
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := "main"
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	text, err := usage(topic)
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}

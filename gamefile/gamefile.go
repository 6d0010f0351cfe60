// Package gamefile saves games to and loads them from YAML files. A saved
// game is the rules, the players, and the ordered list of placements; a
// load replays the placements onto an empty board.
package gamefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/game"
)

const (
	FormatVersion = 1
	Extension     = ".yaml"
)

var (
	ErrChecksumMismatch   = errors.New("saved game checksum mismatch")
	ErrUnsupportedVersion = errors.New("unsupported saved game version")
	ErrBadName            = errors.New("bad saved game name")
	ErrCorrupt            = errors.New("corrupt saved game")
)

type PlayerRecord struct {
	Nickname string `yaml:"nickname"`
	Color    string `yaml:"color"`
	Kind     string `yaml:"kind"`
	Pieces   int    `yaml:"pieces"`
}

type Placement struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// Document is the on-disk form of a game.
type Document struct {
	Version      int            `yaml:"version"`
	ID           string         `yaml:"id"`
	Rules        game.Rules     `yaml:"rules"`
	Players      []PlayerRecord `yaml:"players"`
	OnTurn       int            `yaml:"on_turn"`
	State        string         `yaml:"state"`
	Winner       int            `yaml:"winner"`
	BoardSize    int            `yaml:"board_size"`
	Placements   []Placement    `yaml:"placements"`
	PositionHash string         `yaml:"position_hash"`
	// Checksum is the xxhash64 of the document serialized with an empty
	// checksum.
	Checksum string `yaml:"checksum"`
}

func parseState(s string) (game.PlayState, error) {
	for _, st := range []game.PlayState{game.StateNotStarted, game.StatePlaying, game.StateGameOver} {
		if st.String() == s {
			return st, nil
		}
	}
	return game.StateNotStarted, fmt.Errorf("%w: unknown state %q", ErrCorrupt, s)
}

// FromGame builds a document for g, checksum included.
func FromGame(g *game.Game) (*Document, error) {
	snap := g.Snapshot()
	doc := &Document{
		Version:      FormatVersion,
		ID:           snap.ID,
		Rules:        snap.Rules,
		OnTurn:       snap.OnTurn,
		State:        snap.State.String(),
		Winner:       snap.Winner,
		BoardSize:    snap.BoardSize,
		PositionHash: fmt.Sprintf("%016x", g.Hash()),
	}
	for i, p := range snap.Players {
		doc.Players = append(doc.Players, PlayerRecord{
			Nickname: p.Nickname,
			Color:    p.Color.String(),
			Kind:     p.Kind.String(),
			Pieces:   snap.Pieces[i],
		})
	}
	doc.Placements = lo.Map(snap.Placements, func(s board.Stone, _ int) Placement {
		return Placement{Row: s.Row, Col: s.Col, Color: s.Color.String()}
	})
	sum, err := doc.checksum()
	if err != nil {
		return nil, err
	}
	doc.Checksum = sum
	return doc, nil
}

func (d *Document) checksum() (string, error) {
	c := *d
	c.Checksum = ""
	bts, err := yaml.Marshal(&c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(bts)), nil
}

// ToGame verifies the document and rebuilds the game it describes.
func (d *Document) ToGame() (*game.Game, error) {
	if d.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, d.Version)
	}
	sum, err := d.checksum()
	if err != nil {
		return nil, err
	}
	if sum != d.Checksum {
		return nil, fmt.Errorf("%w: have %s, computed %s", ErrChecksumMismatch, d.Checksum, sum)
	}
	if len(d.Players) != 2 {
		return nil, fmt.Errorf("%w: %d players", ErrCorrupt, len(d.Players))
	}
	state, err := parseState(d.State)
	if err != nil {
		return nil, err
	}
	snap := game.Snapshot{
		ID:        d.ID,
		Rules:     d.Rules,
		OnTurn:    d.OnTurn,
		State:     state,
		Winner:    d.Winner,
		BoardSize: d.BoardSize,
	}
	for i, p := range d.Players {
		color, err := board.ColorFromString(p.Color)
		if err != nil {
			return nil, err
		}
		kind, err := game.PlayerKindFromString(p.Kind)
		if err != nil {
			return nil, err
		}
		snap.Players[i] = game.PlayerInfo{Nickname: p.Nickname, Color: color, Kind: kind}
		snap.Pieces[i] = p.Pieces
	}
	for _, p := range d.Placements {
		color, err := board.ColorFromString(p.Color)
		if err != nil {
			return nil, err
		}
		snap.Placements = append(snap.Placements, board.NewStone(color, p.Row, p.Col))
	}
	g, err := game.Restore(snap)
	if err != nil {
		return nil, err
	}
	if state != game.StateNotStarted {
		if h := fmt.Sprintf("%016x", g.Hash()); h != d.PositionHash {
			return nil, fmt.Errorf("%w: position hash %s, replayed %s", ErrCorrupt, d.PositionHash, h)
		}
	}
	return g, nil
}

// SaveTo writes g to path, replacing any existing file.
func SaveTo(path string, g *game.Game) error {
	doc, err := FromGame(g)
	if err != nil {
		return err
	}
	bts, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, bts, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	log.Debug().Str("path", path).Str("id", doc.ID).Int("placements", len(doc.Placements)).
		Msg("saved-game")
	return nil
}

func LoadFrom(path string) (*game.Game, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := yaml.Unmarshal(bts, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	g, err := doc.ToGame()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("id", doc.ID).Msg("loaded-game")
	return g, nil
}

// PathFor turns a save name into a file path in dir.
func PathFor(dir, name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), Extension)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(dir, name+Extension), nil
}

// Save writes g into dir under name.
func Save(dir, name string, g *game.Game) error {
	path, err := PathFor(dir, name)
	if err != nil {
		return err
	}
	return SaveTo(path, g)
}

func Load(dir, name string) (*game.Game, error) {
	path, err := PathFor(dir, name)
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// List returns the names of the games saved in dir, sorted. A missing
// directory has no games.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), Extension), true
	})
	sort.Strings(names)
	return names, nil
}

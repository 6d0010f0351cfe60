package gamefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/game"
)

func sampleGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.Rules{BoardSize: 9, WinLength: 4, PiecesPerPlayer: 20},
		[]game.PlayerInfo{
			{Nickname: "cesar", Color: board.Dark, Kind: game.Human},
			{Nickname: "bot", Color: board.Light, Kind: game.Bot},
		})
	if err != nil {
		t.Fatal(err)
	}
	g.StartGame()
	for _, m := range [][2]int{{3, 4}, {4, 5}, {3, 3}, {5, 5}} {
		if _, err := g.PlayMove(m[0], m[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestSaveAndLoad(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	g := sampleGame(t)

	is.NoErr(Save(dir, "first", g))
	loaded, err := Load(dir, "first")
	is.NoErr(err)
	is.Equal(loaded.Uid(), g.Uid())
	is.Equal(loaded.History(), g.History())
	is.Equal(loaded.Board().Stones(), g.Board().Stones())
	is.Equal(loaded.Hash(), g.Hash())
	is.Equal(loaded.PlayerOnTurn(), g.PlayerOnTurn())
	is.Equal(loaded.PiecesFor(0), g.PiecesFor(0))
	is.Equal(loaded.PiecesFor(1), g.PiecesFor(1))
	is.Equal(loaded.PlayerInfo(1), g.PlayerInfo(1))
	is.Equal(loaded.Rules(), g.Rules())

	// and the loaded game keeps going
	_, err = loaded.PlayMove(2, 2)
	is.NoErr(err)
}

func TestSavedFileIsReadableYAML(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(Save(dir, "readable.yaml", sampleGame(t)))
	bts, err := os.ReadFile(filepath.Join(dir, "readable.yaml"))
	is.NoErr(err)
	s := string(bts)
	is.True(strings.Contains(s, "version: 1"))
	is.True(strings.Contains(s, "nickname: cesar"))
	is.True(strings.Contains(s, "color: dark"))
	is.True(strings.Contains(s, "checksum:"))
}

func TestTamperedFileFailsChecksum(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(Save(dir, "g", sampleGame(t)))
	path := filepath.Join(dir, "g.yaml")
	bts, err := os.ReadFile(path)
	is.NoErr(err)
	tampered := strings.Replace(string(bts), "pieces: 18", "pieces: 99", 1)
	is.True(tampered != string(bts))
	is.NoErr(os.WriteFile(path, []byte(tampered), 0o644))

	_, err = LoadFrom(path)
	is.True(errors.Is(err, ErrChecksumMismatch))
}

func TestUnsupportedVersion(t *testing.T) {
	is := is.New(t)
	doc, err := FromGame(sampleGame(t))
	is.NoErr(err)
	doc.Version = 7
	_, err = doc.ToGame()
	is.True(errors.Is(err, ErrUnsupportedVersion))
}

func TestBadPlacementRejected(t *testing.T) {
	is := is.New(t)
	doc, err := FromGame(sampleGame(t))
	is.NoErr(err)
	doc.Placements = append(doc.Placements, Placement{Row: 4, Col: 4, Color: "light"})
	doc.Checksum, err = doc.checksum()
	is.NoErr(err)
	_, err = doc.ToGame()
	is.True(errors.Is(err, board.ErrCellOccupied))
}

func TestPositionHashChecked(t *testing.T) {
	is := is.New(t)
	doc, err := FromGame(sampleGame(t))
	is.NoErr(err)
	doc.PositionHash = "0000000000000001"
	doc.Checksum, err = doc.checksum()
	is.NoErr(err)
	_, err = doc.ToGame()
	is.True(errors.Is(err, ErrCorrupt))
}

func TestGarbageFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "junk.yaml")
	is.NoErr(os.WriteFile(path, []byte("version: [1, 2\n"), 0o644))
	_, err := LoadFrom(path)
	is.True(errors.Is(err, ErrCorrupt))
}

func TestPathFor(t *testing.T) {
	is := is.New(t)
	p, err := PathFor("/x", "abc")
	is.NoErr(err)
	is.Equal(p, filepath.Join("/x", "abc.yaml"))
	for _, bad := range []string{"", "  ", "../up", "a/b", ".."} {
		_, err := PathFor("/x", bad)
		is.True(errors.Is(err, ErrBadName))
	}
}

func TestList(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	names, err := List(filepath.Join(dir, "missing"))
	is.NoErr(err)
	is.Equal(len(names), 0)

	g := sampleGame(t)
	is.NoErr(Save(dir, "zeta", g))
	is.NoErr(Save(dir, "alpha", g))
	is.NoErr(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	names, err = List(dir)
	is.NoErr(err)
	is.Equal(names, []string{"alpha", "zeta"})
}

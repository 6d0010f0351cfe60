package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestAddAndRemoveStone(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(15)

	b, err := board.New(15)
	is.NoErr(err)
	is.NoErr(b.Place(board.NewStone(board.Dark, 7, 7)))
	h := z.Hash(b)

	s := board.NewStone(board.Light, 7, 8)
	h1 := z.AddStone(h, s)
	is.NoErr(b.Place(s))
	is.Equal(h1, z.Hash(b))
	is.True(h1 != h) // extremely unlikely to collide

	h2 := z.AddStone(h1, s)
	is.Equal(h2, h)
}

func TestHashIsOrderIndependent(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(9)

	stones := []board.Stone{
		board.NewStone(board.Dark, 4, 4), board.NewStone(board.Light, 4, 5),
		board.NewStone(board.Dark, 3, 3), board.NewStone(board.Light, 5, 5),
	}
	b1, err := board.Replay(9, stones)
	is.NoErr(err)
	b2, err := board.Replay(9, []board.Stone{stones[2], stones[3], stones[0], stones[1]})
	is.NoErr(err)
	is.Equal(z.Hash(b1), z.Hash(b2))
}

func TestColorsHashDifferently(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(5)
	is.True(z.AddStone(0, board.NewStone(board.Dark, 2, 2)) !=
		z.AddStone(0, board.NewStone(board.Light, 2, 2)))
}

func TestTablesAreStable(t *testing.T) {
	is := is.New(t)
	z1, z2 := &Zobrist{}, &Zobrist{}
	z1.Initialize(7)
	z2.Initialize(7)
	b, err := board.Replay(7, []board.Stone{board.NewStone(board.Dark, 3, 3)})
	is.NoErr(err)
	is.Equal(z1.Hash(b), z2.Hash(b))
	is.Equal(z1.BoardDim(), 7)
}

func TestForDimIsShared(t *testing.T) {
	is := is.New(t)
	is.True(ForDim(11) == ForDim(11))
	is.Equal(ForDim(13).BoardDim(), 13)
}

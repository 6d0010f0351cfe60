package zobrist

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/cache"
)

const bignum = 1<<63 - 2

// seed is fixed so the same position hashes the same way in every process.
// Saved game checksums and the bot cache both rely on that.
var seed = []byte("gomoku-zobrist-position-tables!!")

// generate a zobrist hash for an n-in-a-row position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable is indexed by cell, then by color (Dark, Light).
	posTable [][2]uint64
	boardDim int
}

func (z *Zobrist) Initialize(boardDim int) {
	rng := frand.NewCustom(seed, 1024, 12)
	z.boardDim = boardDim
	z.posTable = make([][2]uint64, boardDim*boardDim)
	for i := range z.posTable {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = rng.Uint64n(bignum) + 1
		}
	}
}

func (z *Zobrist) BoardDim() int {
	return z.boardDim
}

func colorIdx(c board.Color) int {
	if c == board.Light {
		return 1
	}
	return 0
}

// Hash computes the key for every stone on b. The board must have the
// dimension the tables were initialized with.
func (z *Zobrist) Hash(b *board.Board) uint64 {
	key := uint64(0)
	for _, s := range b.Stones() {
		key ^= z.posTable[s.Row*z.boardDim+s.Col][colorIdx(s.Color)]
	}
	return key
}

// AddStone toggles s in key. Calling it twice with the same stone gives back
// the original key.
func (z *Zobrist) AddStone(key uint64, s board.Stone) uint64 {
	return key ^ z.posTable[s.Row*z.boardDim+s.Col][colorIdx(s.Color)]
}

// ForDim returns the process-wide tables for a board dimension, building
// them on first use.
func ForDim(dim int) *Zobrist {
	obj, _ := cache.Load(fmt.Sprintf("zobrist:%d", dim), func(string) (any, error) {
		z := &Zobrist{}
		z.Initialize(dim)
		return z, nil
	})
	return obj.(*Zobrist)
}

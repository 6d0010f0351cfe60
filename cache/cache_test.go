package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	calls := 0
	load := func(key string) (any, error) {
		calls++
		return key + "!", nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load("abc", load)
		is.NoErr(err)
		is.Equal(obj.(string), "abc!")
	}
	is.Equal(calls, 1)
	hits, misses := Stats()
	is.Equal(hits, 2)
	is.Equal(misses, 1)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	boom := errors.New("boom")
	_, err := Load("x", func(string) (any, error) { return nil, boom })
	is.True(errors.Is(err, boom))
	obj, err := Load("x", func(string) (any, error) { return 5, nil })
	is.NoErr(err)
	is.Equal(obj.(int), 5)
}

func TestDecisionKey(t *testing.T) {
	is := is.New(t)
	is.Equal(DecisionKey(15, 0xff, board.Dark, 5), "decision:15:ff:dark:5")
	is.True(DecisionKey(15, 0xff, board.Dark, 5) != DecisionKey(15, 0xff, board.Light, 5))
}

func TestLookupAndStore(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	_, ok := Lookup("k")
	is.True(!ok)
	Store("k", 3)
	obj, ok := Lookup("k")
	is.True(ok)
	is.Equal(obj.(int), 3)
	hits, misses := Stats()
	is.Equal(hits, 1)
	is.Equal(misses, 1)
}

package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
)

// The cache holds objects that are expensive to recompute and safe to share
// between games in the same process: zobrist tables per board dimension and
// bot decisions per position.

type cache struct {
	sync.Mutex
	objects map[string]any
	hits    int
	misses  int
}

type loadFunc func(key string) (any, error)

// GlobalObjectCache is shared by every game in the process.
var GlobalObjectCache *cache

func (c *cache) get(key string, load loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		c.hits++
		log.Trace().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	c.misses++
	log.Trace().Str("key", key).Msg("loading into cache")
	obj, err := load(key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func init() {
	CreateGlobalObjectCache()
}

// CreateGlobalObjectCache replaces the global cache with an empty one.
func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object stored under key, calling load to create it the
// first time. Errors are not cached.
func Load(key string, load loadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(key, load)
}

// Lookup returns the object under key without loading anything.
func Lookup(key string) (any, bool) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	c := GlobalObjectCache
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return obj, ok
}

// Store puts obj under key, replacing anything already there.
func Store(key string, obj any) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	GlobalObjectCache.objects[key] = obj
}

// Stats reports cache hits and misses since the cache was created.
func Stats() (hits, misses int) {
	if GlobalObjectCache == nil {
		return 0, 0
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	return GlobalObjectCache.hits, GlobalObjectCache.misses
}

// DecisionKey names a bot decision for a position.
func DecisionKey(dim int, hash uint64, color board.Color, winLength int) string {
	return fmt.Sprintf("decision:%d:%x:%s:%d", dim, hash, color, winLength)
}

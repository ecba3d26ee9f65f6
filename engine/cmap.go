// cmap: a volatile concurrent hash-map engine.
//
// Entries are spread over a fixed number of shards, each guarded by its own
// RWMutex, with the shard chosen by a hash of the key. Point operations are
// safe for concurrent use from any number of goroutines. Range and count
// operations take a bytewise-sorted snapshot of the keys and then re-fetch
// each value, so they observe entries removed mid-iteration as absent rather
// than blocking writers for the whole pass.
//
// Config items:
//
//	size            required int > 0 — capacity hint in bytes
//	hash_algorithm  optional string  — "xxh3" (default), "fnv", "blake2b"
//	compress_values optional bool    — store values zstd-compressed
package engine

import (
	"slices"
	"sync"
)

const cmapShardCount = 16

// Per-shard map capacity hint derived from the size config item, assuming
// small entries. Clamped so absurd size values cannot force huge allocations.
const cmapMaxShardHint = 1 << 20

type cmapShard struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

type cmapEngine struct {
	shards   [cmapShardCount]cmapShard
	alg      string
	compress bool
}

func openCMap(cfg *Config) (Engine, Status) {
	size, st := cfg.Int64("size")
	if st == NotFound {
		return nil, InvalidArgument // size is required
	}
	if st != OK {
		return nil, st
	}
	if size <= 0 {
		return nil, InvalidArgument
	}

	alg := AlgXXH3
	switch s, st := cfg.String("hash_algorithm"); st {
	case OK:
		alg = s
	case NotFound:
	default:
		return nil, st
	}
	if !validAlg(alg) {
		return nil, InvalidArgument
	}

	comp := false
	switch b, st := cfg.Bool("compress_values"); st {
	case OK:
		comp = b
	case NotFound:
	default:
		return nil, st
	}

	hint := min(int(size/cmapShardCount/256), cmapMaxShardHint)
	e := &cmapEngine{alg: alg, compress: comp}
	for i := range e.shards {
		e.shards[i].entries = make(map[string][]byte, hint)
	}
	return e, OK
}

func (e *cmapEngine) shard(key []byte) *cmapShard {
	return &e.shards[keyHash(key, e.alg)%cmapShardCount]
}

func (e *cmapEngine) Put(key, value []byte) Status {
	var stored []byte
	if e.compress {
		stored = compress(value)
	} else {
		stored = append([]byte(nil), value...) // the engine owns its copy
	}
	s := e.shard(key)
	s.mu.Lock()
	s.entries[string(key)] = stored
	s.mu.Unlock()
	return OK
}

// lookup fetches the value for a key, decompressing into a fresh engine-owned
// buffer if value compression is on.
func (e *cmapEngine) lookup(key string) ([]byte, Status) {
	s := &e.shards[keyHash([]byte(key), e.alg)%cmapShardCount]
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, NotFound
	}
	if e.compress {
		out, ok := decompress(v)
		if !ok {
			return nil, UnknownError
		}
		return out, OK
	}
	return v, OK
}

func (e *cmapEngine) Get(key []byte, fn GetFunc, ctx any) Status {
	v, st := e.lookup(string(key))
	if st != OK {
		return st
	}
	fn(v, ctx)
	return OK
}

func (e *cmapEngine) Remove(key []byte) Status {
	s := e.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[string(key)]; !ok {
		return NotFound
	}
	delete(s.entries, string(key))
	return OK
}

func (e *cmapEngine) Exists(key []byte) Status {
	s := e.shard(key)
	s.mu.RLock()
	_, ok := s.entries[string(key)]
	s.mu.RUnlock()
	if !ok {
		return NotFound
	}
	return OK
}

func (e *cmapEngine) CountAll() (uint64, Status) {
	var n uint64
	for i := range e.shards {
		s := &e.shards[i]
		s.mu.RLock()
		n += uint64(len(s.entries))
		s.mu.RUnlock()
	}
	return n, OK
}

func (e *cmapEngine) CountAbove(key []byte) (uint64, Status) {
	return uint64(len(e.keysAbove(string(key)))), OK
}

func (e *cmapEngine) CountBelow(key []byte) (uint64, Status) {
	return uint64(len(e.keysBelow(string(key)))), OK
}

func (e *cmapEngine) CountBetween(k1, k2 []byte) (uint64, Status) {
	return uint64(len(e.keysBetween(string(k1), string(k2)))), OK
}

func (e *cmapEngine) GetAll(fn EachFunc, ctx any) Status {
	return e.each(e.sortedKeys(), fn, ctx)
}

func (e *cmapEngine) GetAbove(key []byte, fn EachFunc, ctx any) Status {
	return e.each(e.keysAbove(string(key)), fn, ctx)
}

func (e *cmapEngine) GetBelow(key []byte, fn EachFunc, ctx any) Status {
	return e.each(e.keysBelow(string(key)), fn, ctx)
}

func (e *cmapEngine) GetBetween(k1, k2 []byte, fn EachFunc, ctx any) Status {
	return e.each(e.keysBetween(string(k1), string(k2)), fn, ctx)
}

func (e *cmapEngine) Close() {
	for i := range e.shards {
		s := &e.shards[i]
		s.mu.Lock()
		s.entries = nil
		s.mu.Unlock()
	}
}

// sortedKeys returns a bytewise-sorted snapshot of every key.
func (e *cmapEngine) sortedKeys() []string {
	var keys []string
	for i := range e.shards {
		s := &e.shards[i]
		s.mu.RLock()
		for k := range s.entries {
			keys = append(keys, k)
		}
		s.mu.RUnlock()
	}
	slices.Sort(keys)
	return keys
}

// Range selectors. Bounds are exclusive on the named side: above means
// strictly greater, below strictly less, between strictly inside (k1, k2).
func (e *cmapEngine) keysAbove(key string) []string {
	all := e.sortedKeys()
	i, _ := slices.BinarySearch(all, key)
	for i < len(all) && all[i] == key {
		i++
	}
	return all[i:]
}

func (e *cmapEngine) keysBelow(key string) []string {
	all := e.sortedKeys()
	i, _ := slices.BinarySearch(all, key)
	return all[:i]
}

func (e *cmapEngine) keysBetween(k1, k2 string) []string {
	if k1 >= k2 {
		return nil
	}
	all := e.keysAbove(k1)
	i, _ := slices.BinarySearch(all, k2)
	return all[:i]
}

// each drives one iteration call over a key snapshot. Keys removed since the
// snapshot are skipped. A nonzero callback return halts the pass immediately.
func (e *cmapEngine) each(keys []string, fn EachFunc, ctx any) Status {
	for _, k := range keys {
		v, st := e.lookup(k)
		if st == NotFound {
			continue
		}
		if st != OK {
			return st
		}
		if fn([]byte(k), v, ctx) != 0 {
			return StoppedByCallback
		}
	}
	return OK
}

// stree: a volatile sorted engine.
//
// Entries live in a single slice kept in bytewise key order, with binary
// search for point lookups and range bounds. One RWMutex serializes writers;
// readers and iteration proceed concurrently. Iteration works on a snapshot
// of the entry slice taken under the read lock, so a pass observes the state
// at its start even while writers continue.
//
// Config items:
//
//	capacity  optional int >= 0 — initial entry capacity hint
package engine

import (
	"slices"
	"strings"
	"sync"
)

type streeEntry struct {
	key   string
	value []byte
}

type streeEngine struct {
	mu      sync.RWMutex
	entries []streeEntry
}

func openSTree(cfg *Config) (Engine, Status) {
	var hint int64
	switch n, st := cfg.Int64("capacity"); st {
	case OK:
		if n < 0 {
			return nil, InvalidArgument
		}
		hint = n
	case NotFound:
	default:
		return nil, st
	}
	return &streeEngine{entries: make([]streeEntry, 0, hint)}, OK
}

// search locates key in the sorted entry slice. Callers must hold the lock.
func search(entries []streeEntry, key string) (int, bool) {
	return slices.BinarySearchFunc(entries, key, func(e streeEntry, k string) int {
		return strings.Compare(e.key, k)
	})
}

func (e *streeEngine) Put(key, value []byte) Status {
	stored := append([]byte(nil), value...)
	e.mu.Lock()
	defer e.mu.Unlock()
	i, found := search(e.entries, string(key))
	if found {
		e.entries[i].value = stored
		return OK
	}
	e.entries = slices.Insert(e.entries, i, streeEntry{string(key), stored})
	return OK
}

func (e *streeEngine) Get(key []byte, fn GetFunc, ctx any) Status {
	e.mu.RLock()
	i, found := search(e.entries, string(key))
	var v []byte
	if found {
		v = e.entries[i].value
	}
	e.mu.RUnlock()
	if !found {
		return NotFound
	}
	fn(v, ctx)
	return OK
}

func (e *streeEngine) Remove(key []byte) Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, found := search(e.entries, string(key))
	if !found {
		return NotFound
	}
	e.entries = slices.Delete(e.entries, i, i+1)
	return OK
}

func (e *streeEngine) Exists(key []byte) Status {
	e.mu.RLock()
	_, found := search(e.entries, string(key))
	e.mu.RUnlock()
	if !found {
		return NotFound
	}
	return OK
}

// Range bounds, exclusive on the named side. Callers must hold the lock.
// above returns the index of the first entry strictly greater than key;
// below the index of the first entry >= key (everything before it is below).
func above(entries []streeEntry, key string) int {
	i, found := search(entries, key)
	if found {
		i++
	}
	return i
}

func below(entries []streeEntry, key string) int {
	i, _ := search(entries, key)
	return i
}

func (e *streeEngine) CountAll() (uint64, Status) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return uint64(len(e.entries)), OK
}

func (e *streeEngine) CountAbove(key []byte) (uint64, Status) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return uint64(len(e.entries) - above(e.entries, string(key))), OK
}

func (e *streeEngine) CountBelow(key []byte) (uint64, Status) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return uint64(below(e.entries, string(key))), OK
}

func (e *streeEngine) CountBetween(k1, k2 []byte) (uint64, Status) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	lo := above(e.entries, string(k1))
	hi := below(e.entries, string(k2))
	if string(k1) >= string(k2) || lo >= hi {
		return 0, OK
	}
	return uint64(hi - lo), OK
}

func (e *streeEngine) GetAll(fn EachFunc, ctx any) Status {
	e.mu.RLock()
	snap := slices.Clone(e.entries)
	e.mu.RUnlock()
	return each(snap, fn, ctx)
}

func (e *streeEngine) GetAbove(key []byte, fn EachFunc, ctx any) Status {
	e.mu.RLock()
	snap := slices.Clone(e.entries[above(e.entries, string(key)):])
	e.mu.RUnlock()
	return each(snap, fn, ctx)
}

func (e *streeEngine) GetBelow(key []byte, fn EachFunc, ctx any) Status {
	e.mu.RLock()
	snap := slices.Clone(e.entries[:below(e.entries, string(key))])
	e.mu.RUnlock()
	return each(snap, fn, ctx)
}

func (e *streeEngine) GetBetween(k1, k2 []byte, fn EachFunc, ctx any) Status {
	e.mu.RLock()
	var snap []streeEntry
	lo := above(e.entries, string(k1))
	hi := below(e.entries, string(k2))
	if string(k1) < string(k2) && lo < hi {
		snap = slices.Clone(e.entries[lo:hi])
	}
	e.mu.RUnlock()
	return each(snap, fn, ctx)
}

func (e *streeEngine) Close() {
	e.mu.Lock()
	e.entries = nil
	e.mu.Unlock()
}

func each(entries []streeEntry, fn EachFunc, ctx any) Status {
	for _, en := range entries {
		if fn([]byte(en.key), en.value, ctx) != 0 {
			return StoppedByCallback
		}
	}
	return OK
}

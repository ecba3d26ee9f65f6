// Engine handle wrapper and lifecycle.
//
// A DB exclusively owns one native engine handle. Open parses the JSON
// settings payload, selects the engine by name, and returns an open handle;
// any failure dispatches the status and retains nothing. Close releases the
// handle exactly once and is a no-op when repeated. Every operation on a
// closed handle returns ErrClosed — an explicit error, not undefined
// behavior.
//
// Every operation is synchronous: it blocks the calling goroutine until the
// engine call, including all nested callback invocations, has returned. The
// binding never reorders, buffers, or batches callback deliveries.
package ember

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jpl-au/ember/engine"
)

// Handle states.
const (
	stateOpen int32 = iota
	stateClosed
)

// DB is an open engine handle. The zero value is not usable; construct with
// Open.
type DB struct {
	eng   engine.Engine
	state atomic.Int32
	log   *zap.Logger
}

// Open opens an engine by name with a JSON settings payload, e.g.
//
//	db, err := ember.Open("cmap", []byte(`{"size": 1048576}`))
//
// The payload is passed through to the engine uninterpreted; a nil or empty
// payload is an empty config. On failure no handle is retained and the
// returned error identifies the status: ErrWrongEngineName for an unknown
// engine, ErrConfigParse for a malformed payload, ErrConfigType or
// ErrInvalidArgument for bad settings.
func Open(engineName string, configJSON []byte, opts ...Option) (*DB, error) {
	db := &DB{log: zap.NewNop()}
	for _, opt := range opts {
		opt(db)
	}

	cfg, st := engine.ConfigFromJSON(configJSON)
	if st != engine.OK {
		return nil, dispatch(st)
	}

	eng, st := engine.Open(engineName, cfg)
	if st != engine.OK {
		return nil, dispatch(st)
	}
	db.eng = eng
	db.log.Debug("engine opened", zap.String("engine", engineName))
	return db, nil
}

// Close releases the native handle. Repeated calls are no-ops.
func (db *DB) Close() error {
	if !db.state.CompareAndSwap(stateOpen, stateClosed) {
		return nil
	}
	db.eng.Close()
	db.eng = nil
	db.log.Debug("engine closed")
	return nil
}

// guard rejects operations unless the handle is open.
func (db *DB) guard() error {
	if db.state.Load() != stateOpen {
		return ErrClosed
	}
	return nil
}

// finish resolves the outcome of a bridged engine call. A failure recorded by
// the bridge is what actually went wrong and takes precedence over the
// engine's status for the aborted call.
func (db *DB) finish(c *callbackContext, st engine.Status) error {
	if c.err != nil {
		db.log.Debug("iteration aborted by callback", zap.Error(c.err))
		return c.err
	}
	return dispatch(st)
}

// Put upserts a key-value pair. Keys and values are opaque byte sequences.
func (db *DB) Put(key, value []byte) error {
	if err := db.guard(); err != nil {
		return err
	}
	return dispatch(db.eng.Put(key, value))
}

// Get looks up a key and returns a caller-owned copy of its value. A missing
// key is absence, not an error: Get returns (nil, false, nil).
func (db *DB) Get(key []byte) ([]byte, bool, error) {
	if err := db.guard(); err != nil {
		return nil, false, err
	}
	var out []byte
	st := db.eng.Get(key, func(value []byte, _ any) {
		out = append([]byte(nil), value...) // copy out of the borrowed window
	}, nil)
	if st == engine.NotFound {
		return nil, false, nil
	}
	if st != engine.OK {
		return nil, false, dispatch(st)
	}
	return out, true, nil
}

// GetValue looks up a key and delivers its value to fn as a borrowed view,
// with no copy. Unlike Get, a missing key is an error here: ErrNotFound.
func (db *DB) GetValue(key []byte, fn ValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{vfn: fn}
	return db.finish(c, db.eng.Get(key, valueBridge, c))
}

// Exists reports whether a key is present.
func (db *DB) Exists(key []byte) (bool, error) {
	if err := db.guard(); err != nil {
		return false, err
	}
	st := db.eng.Exists(key)
	if st == engine.NotFound {
		return false, nil
	}
	if st != engine.OK {
		return false, dispatch(st)
	}
	return true, nil
}

// Remove deletes a key. It reports true when an entry was removed and false
// when there was nothing to remove; neither is an error.
func (db *DB) Remove(key []byte) (bool, error) {
	if err := db.guard(); err != nil {
		return false, err
	}
	st := db.eng.Remove(key)
	if st == engine.NotFound {
		return false, nil
	}
	if st != engine.OK {
		return false, dispatch(st)
	}
	return true, nil
}

// CountAll returns the number of stored entries.
func (db *DB) CountAll() (uint64, error) {
	if err := db.guard(); err != nil {
		return 0, err
	}
	n, st := db.eng.CountAll()
	if st != engine.OK {
		return 0, dispatch(st)
	}
	return n, nil
}

// CountAbove returns the number of entries with keys strictly greater than
// key, in the engine's ordering.
func (db *DB) CountAbove(key []byte) (uint64, error) {
	if err := db.guard(); err != nil {
		return 0, err
	}
	n, st := db.eng.CountAbove(key)
	if st != engine.OK {
		return 0, dispatch(st)
	}
	return n, nil
}

// CountBelow returns the number of entries with keys strictly less than key.
func (db *DB) CountBelow(key []byte) (uint64, error) {
	if err := db.guard(); err != nil {
		return 0, err
	}
	n, st := db.eng.CountBelow(key)
	if st != engine.OK {
		return 0, dispatch(st)
	}
	return n, nil
}

// CountBetween returns the number of entries with keys strictly between k1
// and k2, both bounds exclusive.
func (db *DB) CountBetween(k1, k2 []byte) (uint64, error) {
	if err := db.guard(); err != nil {
		return 0, err
	}
	n, st := db.eng.CountBetween(k1, k2)
	if st != engine.OK {
		return 0, dispatch(st)
	}
	return n, nil
}

// GetAll invokes fn once per entry, in the engine's key order, with borrowed
// key and value views. fn returning an error halts the iteration immediately
// and that error is what GetAll returns.
func (db *DB) GetAll(fn KeyValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{kvfn: fn}
	return db.finish(c, db.eng.GetAll(keyValueBridge, c))
}

// GetAbove iterates entries with keys strictly greater than key.
func (db *DB) GetAbove(key []byte, fn KeyValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{kvfn: fn}
	return db.finish(c, db.eng.GetAbove(key, keyValueBridge, c))
}

// GetBelow iterates entries with keys strictly less than key.
func (db *DB) GetBelow(key []byte, fn KeyValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{kvfn: fn}
	return db.finish(c, db.eng.GetBelow(key, keyValueBridge, c))
}

// GetBetween iterates entries with keys strictly between k1 and k2.
func (db *DB) GetBetween(k1, k2 []byte, fn KeyValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{kvfn: fn}
	return db.finish(c, db.eng.GetBetween(k1, k2, keyValueBridge, c))
}

// Keys invokes fn once per entry, in key order, with a borrowed view of the
// key only.
func (db *DB) Keys(fn ValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{vfn: fn}
	return db.finish(c, db.eng.GetAll(keyBridge, c))
}

// KeysAbove iterates keys strictly greater than key.
func (db *DB) KeysAbove(key []byte, fn ValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{vfn: fn}
	return db.finish(c, db.eng.GetAbove(key, keyBridge, c))
}

// KeysBelow iterates keys strictly less than key.
func (db *DB) KeysBelow(key []byte, fn ValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{vfn: fn}
	return db.finish(c, db.eng.GetBelow(key, keyBridge, c))
}

// KeysBetween iterates keys strictly between k1 and k2.
func (db *DB) KeysBetween(k1, k2 []byte, fn ValueFunc) error {
	if err := db.guard(); err != nil {
		return err
	}
	c := &callbackContext{vfn: fn}
	return db.finish(c, db.eng.GetBetween(k1, k2, keyBridge, c))
}

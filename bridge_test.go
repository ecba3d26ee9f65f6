package ember

import (
	"bytes"
	"errors"
	"testing"
)

var errBoom = errors.New("boom")

// A failure on the second of three entries halts the iteration immediately —
// no third invocation — and the caller sees the original failure, not the
// engine's stopped-by-callback status.
func TestCallbackErrorStopsIteration(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("a"), []byte("1"))
	db.Put([]byte("b"), []byte("2"))
	db.Put([]byte("c"), []byte("3"))

	calls := 0
	err := db.GetAll(func(_, _ *View) error {
		calls++
		if calls == 2 {
			return errBoom
		}
		return nil
	})

	if calls != 2 {
		t.Errorf("callback invoked %d times, want 2", calls)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("GetAll: got %v, want errBoom", err)
	}
	if errors.Is(err, ErrStoppedByCallback) {
		t.Error("the callback's own failure must win over ErrStoppedByCallback")
	}
}

func TestCallbackErrorStopsKeysIteration(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("a"), []byte("1"))
	db.Put([]byte("b"), []byte("2"))
	db.Put([]byte("c"), []byte("3"))

	calls := 0
	err := db.Keys(func(*View) error {
		calls++
		return errBoom
	})

	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("Keys: got %v, want errBoom", err)
	}
}

// A view retained past its callback invocation reads back empty, never stale.
func TestViewInvalidatedAfterIteration(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("k"), []byte("value"))

	var escaped []*View
	err := db.GetAll(func(k, v *View) error {
		escaped = append(escaped, k, v)
		return nil
	})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	for i, view := range escaped {
		if view.Valid() {
			t.Errorf("escaped view %d still valid after iteration", i)
		}
		if view.Len() != 0 {
			t.Errorf("escaped view %d Len = %d, want 0", i, view.Len())
		}
		if view.Bytes() != nil {
			t.Errorf("escaped view %d Bytes = %x, want nil", i, view.Bytes())
		}
	}
}

// Copy taken inside the callback window survives it.
func TestViewCopyRetainable(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("k"), []byte("value"))

	var kept []byte
	var keptStr string
	db.GetValue([]byte("k"), func(v *View) error {
		kept = v.Copy()
		keptStr = v.String()
		return nil
	})

	if !bytes.Equal(kept, []byte("value")) {
		t.Errorf("Copy = %q, want %q", kept, "value")
	}
	if keptStr != "value" {
		t.Errorf("String = %q, want %q", keptStr, "value")
	}
}

// GetAll delivers (key, value) in that order, correctly paired.
func TestKeyValuePairing(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("one"), []byte("1"))
	db.Put([]byte("two"), []byte("2"))

	got := map[string]string{}
	err := db.GetAll(func(k, v *View) error {
		got[k.String()] = v.String()
		return nil
	})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	if got["one"] != "1" || got["two"] != "2" {
		t.Errorf("GetAll pairing = %v", got)
	}
}

func TestGetValueBorrowedView(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("k"), []byte("value"))

	var inside *View
	err := db.GetValue([]byte("k"), func(v *View) error {
		inside = v
		if !v.Valid() {
			t.Error("view invalid inside its callback")
		}
		if v.String() != "value" {
			t.Errorf("view = %q inside callback, want %q", v.String(), "value")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}

	if inside.Valid() {
		t.Error("view still valid after GetValue returned")
	}
}

// Invalidation happens by defer, so it holds even when the host function
// panics out of the iteration.
func TestCallbackPanicStillInvalidates(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("k"), []byte("value"))

	var escaped *View
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the callback panic to propagate")
			}
		}()
		db.GetAll(func(k, _ *View) error {
			escaped = k
			panic("host failure")
		})
	}()

	if escaped.Valid() {
		t.Error("escaped view still valid after panic")
	}
}

// GetValue failure propagation mirrors the iteration path.
func TestGetValueCallbackError(t *testing.T) {
	db := openTestDB(t)
	db.Put([]byte("k"), []byte("value"))

	err := db.GetValue([]byte("k"), func(*View) error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Errorf("GetValue: got %v, want errBoom", err)
	}
}

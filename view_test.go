package ember

import (
	"bytes"
	"testing"
)

func TestViewAccessors(t *testing.T) {
	v := &View{data: []byte("abc")}

	if !v.Valid() {
		t.Error("Valid = false for a live view")
	}
	if v.Len() != 3 {
		t.Errorf("Len = %d, want 3", v.Len())
	}
	if !bytes.Equal(v.Bytes(), []byte("abc")) {
		t.Errorf("Bytes = %q, want %q", v.Bytes(), "abc")
	}
	if v.String() != "abc" {
		t.Errorf("String = %q, want %q", v.String(), "abc")
	}
}

func TestViewBytesNoCopy(t *testing.T) {
	backing := []byte("abc")
	v := &View{data: backing}

	if &v.Bytes()[0] != &backing[0] {
		t.Error("Bytes should alias the backing memory, not copy it")
	}
}

func TestViewCopyIndependent(t *testing.T) {
	backing := []byte("abc")
	v := &View{data: backing}

	c := v.Copy()
	if &c[0] == &backing[0] {
		t.Error("Copy should not alias the backing memory")
	}

	v.invalidate()
	if !bytes.Equal(c, []byte("abc")) {
		t.Errorf("copy changed after invalidation: %q", c)
	}
}

func TestViewInvalidate(t *testing.T) {
	v := &View{data: []byte("abc")}
	v.invalidate()

	if v.Valid() {
		t.Error("Valid = true after invalidate")
	}
	if v.Len() != 0 {
		t.Errorf("Len = %d after invalidate, want 0", v.Len())
	}
	if v.Bytes() != nil {
		t.Errorf("Bytes = %q after invalidate, want nil", v.Bytes())
	}
	if v.Copy() != nil {
		t.Error("Copy after invalidate should be nil")
	}
	if v.String() != "" {
		t.Errorf("String = %q after invalidate, want empty", v.String())
	}
}

func TestViewRepeatedReads(t *testing.T) {
	v := &View{data: []byte("abc")}

	for i := 0; i < 3; i++ {
		if v.String() != "abc" {
			t.Fatalf("read %d: String = %q", i, v.String())
		}
	}
}

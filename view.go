// Borrowed views over engine-owned memory.
//
// The engine hands callbacks raw byte ranges it owns and may reuse the moment
// the callback returns. A View makes that window explicit: it is valid from
// construction until the bridge invalidates it immediately after the host
// function returns — never at garbage-collection time. A View that escapes
// its callback reads back as empty, not as stale or reused memory. This is
// the single most safety-critical contract in the package.
package ember

// View is a read-only window over bytes owned by the native engine. It never
// owns, copies, or frees the bytes it references. Inside the callback that
// received it, Bytes accesses the engine's memory directly with no copy; use
// Copy or String to keep data past the callback.
type View struct {
	data []byte
}

// Bytes returns the borrowed bytes. The slice aliases engine-owned memory
// and must not be retained past the callback invocation; after invalidation
// it is nil.
func (v *View) Bytes() []byte {
	return v.data
}

// Len returns the number of borrowed bytes, zero once invalidated.
func (v *View) Len() int {
	return len(v.data)
}

// Valid reports whether the view still references engine memory.
func (v *View) Valid() bool {
	return v.data != nil
}

// Copy returns a caller-owned copy of the bytes, safe to retain.
func (v *View) Copy() []byte {
	if v.data == nil {
		return nil
	}
	return append([]byte(nil), v.data...)
}

// String returns the bytes as a string. Strings are copies and safe to
// retain.
func (v *View) String() string {
	return string(v.data)
}

// invalidate severs the view from engine memory. Called by the bridge as soon
// as the host function returns; any later access sees an empty view.
func (v *View) invalidate() {
	v.data = nil
}

// Callback bridge between engine iteration and host functions.
//
// The engine delivers entries by invoking a callback with engine-owned byte
// ranges and an opaque context value; a nonzero callback return aborts the
// iteration. Engine call frames know nothing about Go errors, so the bridge
// threads a callbackContext through each call: the host function's failure is
// recorded in the context's error cell and the abort code is returned to the
// engine. After the outer call comes back, DB.finish reads the cell — the
// recorded failure is authoritative and takes precedence over whatever status
// the aborted call reports.
//
// Each borrowed byte range is wrapped in a View and invalidated the moment
// the host function returns, by defer, so the invalidation also holds when
// the host function panics.
package ember

// ValueFunc is a host function receiving a single borrowed view. KeysX
// operations deliver the key; GetValue delivers the value. Returning a
// non-nil error halts the iteration immediately and becomes the error the
// enclosing operation reports.
type ValueFunc func(value *View) error

// KeyValueFunc is a host function receiving a key view and a value view, in
// that order. Error semantics match ValueFunc.
type KeyValueFunc func(key, value *View) error

// callbackContext is the per-call channel between one engine call and the
// host function it drives. It is created immediately before the engine call
// and is never retained afterwards; the error cell is the sole path by which
// a failure inside a callback crosses the engine's call frames.
type callbackContext struct {
	vfn  ValueFunc
	kvfn KeyValueFunc
	err  error
}

// Return codes for the engine's iteration callbacks.
const (
	iterContinue = 0
	iterAbort    = -1
)

// valueBridge adapts the engine's value-only callback to the context's
// ValueFunc. The engine's value-callback contract has no abort return; the
// recorded error is checked by the wrapper once the call completes.
func valueBridge(value []byte, ctx any) {
	c := ctx.(*callbackContext)
	if c.err != nil {
		return
	}
	view := &View{data: value}
	defer view.invalidate()
	if err := c.vfn(view); err != nil {
		c.err = err
	}
}

// keyBridge drives the key-only iterations by reusing valueBridge with the
// key bytes; the value bytes are never exposed.
func keyBridge(key, _ []byte, ctx any) int {
	valueBridge(key, ctx)
	if ctx.(*callbackContext).err != nil {
		return iterAbort
	}
	return iterContinue
}

// keyValueBridge wraps both byte ranges in independent views and invokes the
// context's KeyValueFunc.
func keyValueBridge(key, value []byte, ctx any) int {
	c := ctx.(*callbackContext)
	keyView := &View{data: key}
	valueView := &View{data: value}
	defer keyView.invalidate()
	defer valueView.invalidate()
	if err := c.kvfn(keyView, valueView); err != nil {
		c.err = err
		return iterAbort
	}
	return iterContinue
}

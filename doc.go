// Package ember binds an embedded native key-value engine to Go. The engine
// owns all stored data and defines status codes, key ordering, and callback
// contracts; ember translates between the two worlds without copying where it
// can avoid it.
//
// Three pieces do the real work. A View is a borrowed, read-only window over
// engine-owned bytes, valid only inside the callback invocation that produced
// it and explicitly emptied afterwards. The callback bridge adapts the
// engine's context-threaded iteration callbacks into ordinary Go functions
// and carries a failure raised inside a callback back out through engine call
// frames as an abort signal. The status dispatcher maps the engine's closed
// status enumeration onto typed errors rooted under ErrEngine, so callers can
// catch broadly with errors.Is(err, ErrEngine) or match one kind exactly.
//
// A DB is synchronous: each operation blocks until the engine call, including
// every nested callback invocation, has completed. The binding adds no
// locking of its own — thread-safety is exactly whatever the selected engine
// guarantees, no more.
package ember

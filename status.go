// Status-to-error dispatch.
//
// Every engine call returns a status from a closed enumeration. The table
// below translates each non-OK status into exactly one typed error, built
// eagerly at package init so first use cannot race and identities are never
// redefined. NotFound and OutOfMemory map to plain host-idiomatic sentinels;
// every other status maps to a StatusError rooted under ErrEngine, so callers
// choose between catching the whole hierarchy and matching one kind.
package ember

import (
	"errors"
	"fmt"

	"github.com/jpl-au/ember/engine"
)

// ErrEngine is the root of the typed error hierarchy. errors.Is(err,
// ErrEngine) matches every engine-kind error (and ErrClosed), but not
// ErrNotFound or ErrOutOfMemory.
var ErrEngine = errors.New("engine error")

// Host-idiomatic sentinels for statuses that are conditions rather than
// engine failures.
var (
	// ErrNotFound reports a missing entry or config item.
	ErrNotFound = errors.New("entry not found")

	// ErrOutOfMemory reports that the engine ran out of memory or space.
	ErrOutOfMemory = errors.New("out of memory")
)

// StatusError is a typed error for one native status code.
type StatusError struct {
	Status engine.Status // the native code this error mirrors
	Name   string        // stable kind name, e.g. "InvalidArgument"
	msg    string
}

func (e *StatusError) Error() string {
	return e.msg
}

// Is matches ErrEngine (the root) and StatusErrors with the same status.
func (e *StatusError) Is(target error) bool {
	if target == ErrEngine {
		return true
	}
	if se, ok := target.(*StatusError); ok {
		return se.Status == e.Status
	}
	return false
}

// One error value per engine-kind status, created once for process lifetime.
var (
	ErrUnknown = &StatusError{engine.UnknownError, "UnknownError",
		"something unexpected happened"}
	ErrNotSupported = &StatusError{engine.NotSupported, "NotSupported",
		"function is not implemented by current engine"}
	ErrInvalidArgument = &StatusError{engine.InvalidArgument, "InvalidArgument",
		"argument to function has wrong value"}
	ErrConfigParse = &StatusError{engine.ConfigParsingError, "ConfigParsingError",
		"processing config failed"}
	ErrConfigType = &StatusError{engine.ConfigTypeError, "ConfigTypeError",
		"config item has different type than expected"}
	ErrStoppedByCallback = &StatusError{engine.StoppedByCallback, "StoppedByCallback",
		"callback function aborted in an unexpected way"}
	ErrWrongEngineName = &StatusError{engine.WrongEngineName, "WrongEngineName",
		"engine name does not match any available engine"}
	ErrTransactionScope = &StatusError{engine.TransactionScopeError, "TransactionScopeError",
		"transaction scope error; reserved for engine compatibility"}
)

// ErrClosed reports an operation on a handle that is not open. It has no
// native status — the binding refuses the call before reaching the engine —
// but it is rooted under ErrEngine like the dispatched errors.
var ErrClosed = &closedError{}

type closedError struct{}

func (*closedError) Error() string        { return "operation on closed engine" }
func (*closedError) Is(target error) bool { return target == ErrEngine }

// statusErrors is the immutable dispatch table, one entry per non-OK status.
var statusErrors = map[engine.Status]error{
	engine.UnknownError:          ErrUnknown,
	engine.NotFound:              ErrNotFound,
	engine.NotSupported:          ErrNotSupported,
	engine.InvalidArgument:       ErrInvalidArgument,
	engine.ConfigParsingError:    ErrConfigParse,
	engine.ConfigTypeError:       ErrConfigType,
	engine.StoppedByCallback:     ErrStoppedByCallback,
	engine.OutOfMemory:           ErrOutOfMemory,
	engine.WrongEngineName:       ErrWrongEngineName,
	engine.TransactionScopeError: ErrTransactionScope,
}

// dispatch translates a native status into its typed error; OK maps to nil.
// A status outside the table is a broken contract between binding and engine,
// not a runtime condition, and panics rather than inventing an identity.
func dispatch(st engine.Status) error {
	if st == engine.OK {
		return nil
	}
	err, ok := statusErrors[st]
	if !ok {
		panic(fmt.Sprintf("ember: engine returned unknown status %d", int(st)))
	}
	return err
}

// Package engine is the native key-value engine surface the ember binding
// wraps. It deliberately keeps the shape of the original C entry points:
// every call returns an integer Status, iteration delivers entries through a
// caller-supplied callback with an opaque context value, and a nonzero
// callback return aborts the iteration. The byte slices handed to callbacks
// are engine-owned and valid only for the duration of that invocation — the
// engine is free to reuse or release them the moment the callback returns.
//
// Engines are selected by name at open time. The binding above this package
// treats it as foreign code: it mirrors the Status enumeration as a closed
// contract and never retains engine-owned memory.
package engine

// Status is the outcome code returned by every engine call. The enumeration
// is closed: callers must handle exactly this set and nothing else.
type Status int

const (
	OK Status = iota
	UnknownError
	NotFound
	NotSupported
	InvalidArgument
	ConfigParsingError
	ConfigTypeError
	StoppedByCallback
	OutOfMemory
	WrongEngineName
	TransactionScopeError
)

var statusNames = map[Status]string{
	OK:                    "OK",
	UnknownError:          "UNKNOWN_ERROR",
	NotFound:              "NOT_FOUND",
	NotSupported:          "NOT_SUPPORTED",
	InvalidArgument:       "INVALID_ARGUMENT",
	ConfigParsingError:    "CONFIG_PARSING_ERROR",
	ConfigTypeError:       "CONFIG_TYPE_ERROR",
	StoppedByCallback:     "STOPPED_BY_CB",
	OutOfMemory:           "OUT_OF_MEMORY",
	WrongEngineName:       "WRONG_ENGINE_NAME",
	TransactionScopeError: "TRANSACTION_SCOPE_ERROR",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "INVALID_STATUS"
}

// GetFunc receives the value for a single-key lookup. The value slice is
// engine-owned and valid only until the function returns.
type GetFunc func(value []byte, ctx any)

// EachFunc receives one entry per matching key during iteration. Both slices
// are engine-owned and valid only until the function returns. Returning
// nonzero aborts the iteration; the enclosing call then reports
// StoppedByCallback.
type EachFunc func(key, value []byte, ctx any) int

// Engine is one open engine instance. Keys and values are opaque byte
// sequences; range operations use bytewise key ordering and are exclusive of
// the given bound on the named side. Concurrency guarantees are per
// implementation — see the engine files.
type Engine interface {
	Put(key, value []byte) Status
	Get(key []byte, fn GetFunc, ctx any) Status
	Remove(key []byte) Status
	Exists(key []byte) Status

	CountAll() (uint64, Status)
	CountAbove(key []byte) (uint64, Status)
	CountBelow(key []byte) (uint64, Status)
	CountBetween(k1, k2 []byte) (uint64, Status)

	GetAll(fn EachFunc, ctx any) Status
	GetAbove(key []byte, fn EachFunc, ctx any) Status
	GetBelow(key []byte, fn EachFunc, ctx any) Status
	GetBetween(k1, k2 []byte, fn EachFunc, ctx any) Status

	Close()
}

// engines maps an engine name to its opener. The set is fixed at build time.
var engines = map[string]func(*Config) (Engine, Status){
	"cmap":      openCMap,
	"stree":     openSTree,
	"blackhole": openBlackhole,
}

// Open creates an engine instance by name. An unrecognised name reports
// WrongEngineName. A nil config is treated as empty.
func Open(name string, cfg *Config) (Engine, Status) {
	open, ok := engines[name]
	if !ok {
		return nil, WrongEngineName
	}
	if cfg == nil {
		cfg = &Config{}
	}
	return open(cfg)
}

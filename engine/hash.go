// Hash algorithms for shard selection in the cmap engine.
//
// Three algorithms are supported, selectable via the "hash_algorithm" config
// item. xxh3 is the default and fastest; fnv needs no external dependency;
// blake2b has the best distribution.
package engine

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm names accepted in engine configuration.
const (
	AlgXXH3    = "xxh3"
	AlgFNV1a   = "fnv"
	AlgBlake2b = "blake2b"
)

// keyHash maps a key to a 64-bit value using the named algorithm. The
// algorithm name must have been validated at open time.
func keyHash(key []byte, alg string) uint64 {
	switch alg {
	case AlgXXH3:
		return xxh3.Hash(key)
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(key)
		return h.Sum64()
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(key)
		return binary.BigEndian.Uint64(h.Sum(nil))
	default:
		return 0
	}
}

// validAlg reports whether alg names a supported hash algorithm.
func validAlg(alg string) bool {
	switch alg {
	case AlgXXH3, AlgFNV1a, AlgBlake2b:
		return true
	}
	return false
}

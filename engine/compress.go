// Optional value compression for the cmap engine.
//
// With "compress_values" enabled, stored values are Zstd-compressed and
// decompressed into an engine-owned scratch buffer on every read. The scratch
// buffer is handed to the read callback and may be reused immediately after
// the callback returns, so compression also exercises the borrowed-memory
// contract rather than weakening it.
package engine

import (
	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once at init because zstd encoder/decoder construction is
// expensive. SpeedFastest: compression runs on every Put (hot path) while
// the ratio matters little for typical values.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, bool) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, false
	}
	return out, true
}

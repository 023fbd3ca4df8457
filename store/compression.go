package store

import (
	"errors"

	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/klauspost/compress/zstd"
)

// Tensor fields are written once per grid and read back many times, and the
// payload is a single block of little-endian float64s with long monotone runs
// (identity diagonals, slowly varying metric entries). Compression ratio wins
// over encode speed here, and one block never benefits from worker splitting.
var encoder *zstd.Encoder = func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithSingleSegment(true),
		zstd.WithEncoderCRC(false),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}
	return encoder
}()

var decoder *zstd.Decoder = func() *zstd.Decoder {
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.IgnoreChecksum(true),
	)
	if err != nil {
		panic(err)
	}
	return decoder
}()

func compress(raw []byte) []byte {
	// float64 tensor blocks routinely shrink 4x or better
	return encoder.EncodeAll(raw, make([]byte, 0, len(raw)/4))
}

// decompress inflates a stored field; pointCount sizes the output buffer at
// the exact 9 float64s per point the caller expects back.
func decompress(in []byte, pointCount int) ([]byte, error) {
	out, err := decoder.DecodeAll(in, make([]byte, 0, 8*9*pointCount))
	if err != nil {
		return nil, errors.Join(errors.New("failed to inflate tensor field"), err)
	}
	return out, nil
}

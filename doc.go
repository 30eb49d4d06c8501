// Package deltapack64 implements a delta + bit-packing codec for sequences of
// signed 64-bit integers, modeled on Parquet's DELTA_BINARY_PACKED encoding
// but packing 64 values per miniblock into 64-bit lanes instead of 32.
//
// An Encoder accumulates values with WriteInteger, a final Flush pads and
// drains the in-flight block, and Write serializes the header and block
// stream to an io.Writer. A Decoder reconstructs the original sequence from
// an io.Reader with ReadInteger/ReadIntegers. Neither type is safe for
// concurrent use — each owns its internal buffers and the wrapped
// io.Writer/io.Reader for the duration of an operation.
//
// The bit-packing kernel itself lives in internal/bitpack64; see that
// package's doc comment for the wire layout of a packed miniblock.
package deltapack64

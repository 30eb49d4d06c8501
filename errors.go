package deltapack64

import "errors"

// Sentinel errors returned by Decoder. Callers should use errors.Is to test
// for these rather than comparing error strings.
var (
	// ErrInvalidHeader is returned when a decoded header fails the
	// block_size/mini_blocks consistency check (block_size == 0,
	// mini_blocks == 0, or block_size/mini_blocks != 64).
	ErrInvalidHeader = errors.New("deltapack64: invalid header")

	// ErrTruncatedInput is returned when the underlying reader yields fewer
	// bytes than a VLQ, header field, width byte, or packed miniblock needs.
	ErrTruncatedInput = errors.New("deltapack64: truncated input")

	// ErrUnsupportedWidth is returned when a decoded bit-width byte falls
	// outside [0, 64], indicating stream corruption.
	ErrUnsupportedWidth = errors.New("deltapack64: unsupported bit width")

	// ErrExhaustedStream is returned by Decoder.ReadInteger once all
	// total_count values have been read.
	ErrExhaustedStream = errors.New("deltapack64: read past end of stream")
)

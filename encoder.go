package deltapack64

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/benoist/deltapack64/internal/bitpack64"
)

// Encoder accumulates int64 values, delta-encodes and bit-packs them in
// fixed-size blocks, and serializes the result as a DELTA_BINARY_PACKED-style
// byte stream. Construct one with NewEncoder, feed values with WriteInteger,
// call Flush exactly once when done, then Write to emit the stream. An
// Encoder is not safe for concurrent use and should not be reused after
// Write.
type Encoder struct {
	firstValue    int64
	previousValue int64
	totalCount    int
	minDelta      int64
	deltas        []int64
	pos           int
	bitWidths     []uint8
	blocksBuffer  bytes.Buffer

	blockSize     int
	miniBlocks    int
	miniBlockSize int
}

// NewEncoder creates an Encoder that groups miniBlocks miniblocks of 64
// deltas into each block (block_size = 64*miniBlocks). Panics if
// miniBlocks < 1.
func NewEncoder(miniBlocks int) *Encoder {
	if miniBlocks < 1 {
		panic(fmt.Sprintf("deltapack64: mini_blocks must be >= 1, got %d", miniBlocks))
	}
	blockSize := bitpack64.BlockLen * miniBlocks
	return &Encoder{
		minDelta:      math.MaxInt64,
		deltas:        make([]int64, blockSize),
		bitWidths:     make([]uint8, miniBlocks),
		blockSize:     blockSize,
		miniBlocks:    miniBlocks,
		miniBlockSize: bitpack64.BlockLen,
	}
}

// WriteInteger appends v to the sequence being encoded. The first call
// establishes first_value and never contributes a delta; every later call
// computes delta = v - previous_value (two's-complement wraparound is Go's
// defined behavior for int64 subtraction) and buffers it until a full block
// is ready to flush.
func (e *Encoder) WriteInteger(v int64) {
	e.totalCount++

	if e.totalCount == 1 {
		e.firstValue = v
		e.previousValue = v
		return
	}

	delta := v - e.previousValue
	e.previousValue = v

	e.deltas[e.pos] = delta
	e.pos++
	if delta < e.minDelta {
		e.minDelta = delta
	}

	if e.pos == e.blockSize {
		e.flushBlock()
	}
}

// Flush pads any in-flight block up to block_size with synthetic values
// (previous_value + min_delta, repeated) so the bit-packing kernel always
// sees a full 64-lane miniblock, flushes it, then subtracts the padding back
// out of total_count so Write and a later Decoder never see it. Call this
// exactly once, after the last WriteInteger and before Write. A stream with
// fewer than two values (nothing but first_value, or nothing at all) has no
// pending deltas and Flush is a no-op.
func (e *Encoder) Flush() {
	if e.pos == 0 {
		return
	}
	extra := e.blockSize - e.pos
	for i := 0; i < extra; i++ {
		e.WriteInteger(e.previousValue + e.minDelta)
	}
	e.totalCount -= extra
}

// flushBlock normalizes the pending deltas by the block's minimum, selects a
// bit width per miniblock, and bit-packs each one into blocksBuffer. By
// construction (Flush always pads before the final call) pos is always
// exactly block_size here, so every miniblock this writes is full.
func (e *Encoder) flushBlock() {
	if e.pos == 0 {
		return
	}

	for i := 0; i < e.pos; i++ {
		e.deltas[i] -= e.minDelta
	}

	writeZigZagVarint(&e.blocksBuffer, e.minDelta)

	miniBlocksToFlush := (e.pos + e.miniBlockSize - 1) / e.miniBlockSize

	var lane [bitpack64.BlockLen]uint64
	for k := 0; k < miniBlocksToFlush; k++ {
		start := k * e.miniBlockSize
		for i := 0; i < e.miniBlockSize; i++ {
			lane[i] = uint64(e.deltas[start+i])
		}
		e.bitWidths[k] = bitpack64.NumBits(&lane)
	}
	e.blocksBuffer.Write(e.bitWidths[:miniBlocksToFlush])

	packed := make([]byte, bitpack64.ByteLen(bitpack64.MaxWidth))
	for k := 0; k < miniBlocksToFlush; k++ {
		width := e.bitWidths[k]
		if width == 0 {
			continue
		}
		start := k * e.miniBlockSize
		for i := 0; i < e.miniBlockSize; i++ {
			lane[i] = uint64(e.deltas[start+i])
		}
		n := bitpack64.Pack(&lane, packed[:bitpack64.ByteLen(width)], width)
		e.blocksBuffer.Write(packed[:n])
	}

	e.minDelta = math.MaxInt64
	e.pos = 0
}

// Write serializes the header and accumulated block stream to w:
//
//	vlq(block_size) vlq(mini_blocks) vlq(total_count) zz_vlq(first_value) blocks...
//
// Call Flush before Write. After Write, blocksBuffer is drained and the
// Encoder should not be reused.
func (e *Encoder) Write(w io.Writer) error {
	if err := writeUvarint(w, uint64(e.blockSize)); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(e.miniBlocks)); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(e.totalCount)); err != nil {
		return err
	}
	if err := writeZigZagVarint(w, e.firstValue); err != nil {
		return err
	}
	if _, err := w.Write(e.blocksBuffer.Bytes()); err != nil {
		return err
	}
	e.blocksBuffer.Reset()
	return nil
}

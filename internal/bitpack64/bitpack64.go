// Package bitpack64 implements the fixed-width bit-packing kernel behind a
// DELTA_BINARY_PACKED-style codec: pack or unpack exactly 64 uint64 lanes at
// a chosen bit width W in [1, 64].
//
// A packed miniblock is 8*W bytes: W little-endian 64-bit words read as one
// stream of 64*W bits, with value i in bits [i*W, i*W+W) and the low bits of
// each word first. A value that straddles two words keeps its low bits in the
// high end of the earlier word and its high bits in the low end of the next.
//
// Widths 1-63 are handled by packN/unpackN in the generated pack_gen.go (see
// internal/gen64); width 64 is handled here as a plain lane copy. Width 0
// (every value zero, as NumBits reports it) has no routine: Pack and Unpack
// do not accept it, and callers emit and read no bytes for it.
//
//go:generate go run -tags gen64 ../gen64 -out pack_gen.go
package bitpack64

import (
	"encoding/binary"
	"math/bits"
)

// BlockLen is the number of uint64 lanes packed or unpacked per call.
const BlockLen = 64

// MaxWidth is the largest supported bit width.
const MaxWidth = 64

var packFuncs = [MaxWidth + 1]func(*[BlockLen]uint64, []byte) int{
	1: pack1, 2: pack2, 3: pack3, 4: pack4, 5: pack5, 6: pack6, 7: pack7, 8: pack8,
	9: pack9, 10: pack10, 11: pack11, 12: pack12, 13: pack13, 14: pack14, 15: pack15, 16: pack16,
	17: pack17, 18: pack18, 19: pack19, 20: pack20, 21: pack21, 22: pack22, 23: pack23, 24: pack24,
	25: pack25, 26: pack26, 27: pack27, 28: pack28, 29: pack29, 30: pack30, 31: pack31, 32: pack32,
	33: pack33, 34: pack34, 35: pack35, 36: pack36, 37: pack37, 38: pack38, 39: pack39, 40: pack40,
	41: pack41, 42: pack42, 43: pack43, 44: pack44, 45: pack45, 46: pack46, 47: pack47, 48: pack48,
	49: pack49, 50: pack50, 51: pack51, 52: pack52, 53: pack53, 54: pack54, 55: pack55, 56: pack56,
	57: pack57, 58: pack58, 59: pack59, 60: pack60, 61: pack61, 62: pack62, 63: pack63, 64: pack64,
}

var unpackFuncs = [MaxWidth + 1]func([]byte, *[BlockLen]uint64) int{
	1: unpack1, 2: unpack2, 3: unpack3, 4: unpack4, 5: unpack5, 6: unpack6, 7: unpack7, 8: unpack8,
	9: unpack9, 10: unpack10, 11: unpack11, 12: unpack12, 13: unpack13, 14: unpack14, 15: unpack15, 16: unpack16,
	17: unpack17, 18: unpack18, 19: unpack19, 20: unpack20, 21: unpack21, 22: unpack22, 23: unpack23, 24: unpack24,
	25: unpack25, 26: unpack26, 27: unpack27, 28: unpack28, 29: unpack29, 30: unpack30, 31: unpack31, 32: unpack32,
	33: unpack33, 34: unpack34, 35: unpack35, 36: unpack36, 37: unpack37, 38: unpack38, 39: unpack39, 40: unpack40,
	41: unpack41, 42: unpack42, 43: unpack43, 44: unpack44, 45: unpack45, 46: unpack46, 47: unpack47, 48: unpack48,
	49: unpack49, 50: unpack50, 51: unpack51, 52: unpack52, 53: unpack53, 54: unpack54, 55: unpack55, 56: unpack56,
	57: unpack57, 58: unpack58, 59: unpack59, 60: unpack60, 61: unpack61, 62: unpack62, 63: unpack63, 64: unpack64,
}

// ByteLen returns the number of packed bytes a width produces (8*width, or 0
// for width 0).
func ByteLen(width uint8) int {
	return int(width) * 8
}

// Pack writes exactly 8*width bytes to output, encoding the 64 values in
// input at the given bit width. Width must be in [1, 64] (width 0 carries no
// payload — callers must special-case it; see the Encoder's block flush).
// Every value in input must be < 2^width when width < 64; Pack does not
// validate this.
func Pack(input *[BlockLen]uint64, output []byte, width uint8) int {
	if width == 64 {
		return pack64(input, output)
	}
	fn := packFuncs[width]
	return fn(input, output)
}

// Unpack reads exactly 8*width bytes from input and writes 64 values to
// output. Width must be in [1, 64].
func Unpack(input []byte, output *[BlockLen]uint64, width uint8) int {
	if width == 64 {
		return unpack64(input, output)
	}
	fn := unpackFuncs[width]
	return fn(input, output)
}

// pack64 is the identity case: 64 little-endian lanes, no bit-splitting.
func pack64(input *[BlockLen]uint64, output []byte) int {
	for i, v := range input {
		binary.LittleEndian.PutUint64(output[i*8:i*8+8], v)
	}
	return BlockLen * 8
}

// unpack64 mirrors pack64.
func unpack64(input []byte, output *[BlockLen]uint64) int {
	for i := range output {
		output[i] = binary.LittleEndian.Uint64(input[i*8 : i*8+8])
	}
	return BlockLen * 8
}

// NumBits returns the minimum width W such that every value in values is
// < 2^W, or 0 if every value is zero.
func NumBits(values *[BlockLen]uint64) uint8 {
	var acc uint64
	for _, v := range values {
		acc |= v
	}
	return uint8(bits.Len64(acc))
}

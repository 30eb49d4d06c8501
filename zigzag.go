package deltapack64

// ZigZagEncode64 maps a signed 64-bit integer to an unsigned one such that
// small magnitudes (positive or negative) map to small unsigned values,
// making the result cheap to frame as a VLQ.
func ZigZagEncode64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigZagDecode64 is the inverse of ZigZagEncode64.
func ZigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ZigZagEncode32 and ZigZagDecode32 are the 32-bit variants, exported for
// collaborators that scale deltas to 32 bits rather than 64; this package's
// own Encoder/Decoder use only the 64-bit pair.
func ZigZagEncode32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

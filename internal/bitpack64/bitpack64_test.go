package bitpack64

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genLane fills a 64-lane block with values masked to width bits, guaranteeing
// at least one value uses the top bit so the width is exercised exactly.
func genLane(rng *rand.Rand, width uint8) *[BlockLen]uint64 {
	var lane [BlockLen]uint64
	if width == 0 {
		return &lane
	}
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	for i := range lane {
		lane[i] = rng.Uint64() & mask
	}
	lane[0] |= uint64(1) << (width - 1)
	return &lane
}

func TestPackUnpackRoundTripAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for width := uint8(1); width <= MaxWidth; width++ {
		lane := genLane(rng, width)

		buf := make([]byte, ByteLen(width))
		n := Pack(lane, buf, width)
		require.Equal(t, ByteLen(width), n, "width %d: unexpected packed length", width)

		var out [BlockLen]uint64
		un := Unpack(buf, &out, width)
		require.Equal(t, ByteLen(width), un, "width %d: unexpected unpacked length", width)

		assert.Equal(t, *lane, out, "width %d: round trip mismatch", width)
	}
}

func TestPackWidth64Identity(t *testing.T) {
	assert := assert.New(t)

	var lane [BlockLen]uint64
	for i := range lane {
		lane[i] = ^uint64(0) - uint64(i)
	}

	buf := make([]byte, ByteLen(64))
	Pack(&lane, buf, 64)

	var out [BlockLen]uint64
	Unpack(buf, &out, 64)

	assert.Equal(lane, out)
}

func TestNumBitsMinimality(t *testing.T) {
	assert := assert.New(t)

	var allZero [BlockLen]uint64
	assert.Equal(uint8(0), NumBits(&allZero))

	var single [BlockLen]uint64
	single[40] = 1
	assert.Equal(uint8(1), NumBits(&single))

	var wide [BlockLen]uint64
	wide[0] = 1 << 63
	assert.Equal(uint8(64), NumBits(&wide))

	var three [BlockLen]uint64
	three[7] = 0b101
	assert.Equal(uint8(3), NumBits(&three))
}

// TestNumBitsSweep stores each i in [1,63] as the only nonzero lane and checks
// that the reported width is at least 1 and never more than i.
func TestNumBitsSweep(t *testing.T) {
	assert := assert.New(t)

	for i := 1; i < 64; i++ {
		var lane [BlockLen]uint64
		lane[0] = uint64(i) // i in [1,63] needs bits.Len64(i) bits, <= i
		got := NumBits(&lane)
		assert.LessOrEqual(int(got), i)
		assert.GreaterOrEqual(int(got), 1)
	}
}

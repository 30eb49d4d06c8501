package deltapack64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZigZagEncode64RoundTrip(t *testing.T) {
	assert := assert.New(t)

	cases := []int64{0, 1, -1, 2, -2, 63, -64, math.MaxInt64, math.MinInt64, 1234567, -1234567}
	for _, v := range cases {
		assert.Equal(v, ZigZagDecode64(ZigZagEncode64(v)), "round trip for %d", v)
	}
}

func TestZigZagEncode64SmallMagnitudesStaySmall(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0), ZigZagEncode64(0))
	assert.Equal(uint64(1), ZigZagEncode64(-1))
	assert.Equal(uint64(2), ZigZagEncode64(1))
	assert.Equal(uint64(3), ZigZagEncode64(-2))
	assert.Equal(uint64(4), ZigZagEncode64(2))
}

func TestZigZagEncode32RoundTrip(t *testing.T) {
	assert := assert.New(t)

	cases := []int32{0, 1, -1, 2, -2, math.MaxInt32, math.MinInt32}
	for _, v := range cases {
		assert.Equal(v, ZigZagDecode32(ZigZagEncode32(v)), "round trip for %d", v)
	}
}

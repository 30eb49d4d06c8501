package deltapack64

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeAll(t *testing.T, miniBlocks int, values []int64) []byte {
	t.Helper()
	enc := NewEncoder(miniBlocks)
	for _, v := range values {
		enc.WriteInteger(v)
	}
	enc.Flush()

	var buf bytes.Buffer
	require.NoError(t, enc.Write(&buf))
	return buf.Bytes()
}

func decodeAll(t *testing.T, wire []byte) []int64 {
	t.Helper()
	dec, err := NewDecoder(bytes.NewReader(wire))
	require.NoError(t, err)

	out, err := dec.ReadIntegers()
	require.NoError(t, err)
	assert.True(t, dec.AllRead())
	return out
}

func TestSingleValueWireFormat(t *testing.T) {
	wire := encodeAll(t, 1, []int64{5})
	assert.Equal(t, []byte{0x40, 0x01, 0x01, 0x0a}, wire)

	got := decodeAll(t, wire)
	assert.Equal(t, []int64{5}, got)
}

func TestRoundTripSmallSequence(t *testing.T) {
	values := []int64{10, 11, 12, 13}
	wire := encodeAll(t, 1, values)
	assert.Equal(t, values, decodeAll(t, wire))
}

func TestRoundTripNonMonotonic(t *testing.T) {
	values := []int64{100, 50, 75}
	wire := encodeAll(t, 1, values)
	assert.Equal(t, values, decodeAll(t, wire))
}

func TestRoundTripExtremes(t *testing.T) {
	values := []int64{math.MaxInt64, math.MinInt64, 0, math.MaxInt64}
	wire := encodeAll(t, 1, values)
	assert.Equal(t, values, decodeAll(t, wire))
}

func TestRoundTripEmptySequence(t *testing.T) {
	wire := encodeAll(t, 1, nil)
	dec, err := NewDecoder(bytes.NewReader(wire))
	require.NoError(t, err)
	assert.True(t, dec.AllRead())
	_, err = dec.ReadInteger()
	assert.ErrorIs(t, err, ErrExhaustedStream)
}

func TestRoundTripConstantSequenceIsZeroWidth(t *testing.T) {
	values := make([]int64, 200)
	for i := range values {
		values[i] = 7
	}
	wire := encodeAll(t, 2, values)
	// Every delta is 0, so after the 6-byte header each of the two blocks is
	// zz_vlq(0) plus two zero width bytes, with no packed payload.
	assert.Equal(t, make([]byte, 6), wire[6:])
	assert.Equal(t, values, decodeAll(t, wire))
}

func TestRoundTripSpansMultipleBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := make([]int64, 500)
	v := int64(0)
	for i := range values {
		v += rng.Int63n(2000) - 1000
		values[i] = v
	}

	for _, miniBlocks := range []int{1, 2, 4} {
		wire := encodeAll(t, miniBlocks, values)
		assert.Equal(t, values, decodeAll(t, wire), "mini_blocks=%d", miniBlocks)
	}
}

func TestRoundTripSingleValueNoDeltas(t *testing.T) {
	wire := encodeAll(t, 3, []int64{-42})
	assert.Equal(t, []int64{-42}, decodeAll(t, wire))
}

func TestDecoderRejectsInvalidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeUvarint(&buf, 63)) // block_size not a multiple of 64
	require.NoError(t, writeUvarint(&buf, 1))
	require.NoError(t, writeUvarint(&buf, 1))
	require.NoError(t, writeZigZagVarint(&buf, 0))

	_, err := NewDecoder(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecoderReportsTruncatedInput(t *testing.T) {
	wire := encodeAll(t, 1, []int64{1, 2, 3, 4, 5})
	truncated := wire[:len(wire)-1]

	dec, err := NewDecoder(bytes.NewReader(truncated))
	if err != nil {
		assert.ErrorIs(t, err, ErrTruncatedInput)
		return
	}
	_, err = dec.ReadIntegers()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestNewEncoderPanicsOnInvalidMiniBlocks(t *testing.T) {
	assert.Panics(t, func() { NewEncoder(0) })
}

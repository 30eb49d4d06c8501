package deltapack64

import (
	"bufio"
	"io"

	"github.com/benoist/deltapack64/internal/bitpack64"
)

// Decoder reconstructs a sequence of int64 values from the wire format
// Encoder.Write produces. Construct one with NewDecoder, then call
// ReadInteger (or ReadIntegers) until AllRead reports true. A Decoder is not
// safe for concurrent use.
type Decoder struct {
	r *bufio.Reader

	firstValue    int64
	previousValue int64
	totalCount    int
	valuesRead    int

	minDelta   int64
	bitWidths  []uint8
	deltas     []int64
	miniBlocks int
}

// NewDecoder reads and validates the header (block_size, mini_blocks,
// total_count, first_value) from r and, if more than one value was encoded,
// eagerly reads the first block's min_delta and bit widths so ReadInteger
// never has to distinguish "no block read yet" from "block exhausted".
func NewDecoder(r io.Reader) (*Decoder, error) {
	br := bufio.NewReader(r)

	blockSize, err := readUvarint(br)
	if err != nil {
		return nil, err
	}
	miniBlocksU, err := readUvarint(br)
	if err != nil {
		return nil, err
	}
	totalCount, err := readUvarint(br)
	if err != nil {
		return nil, err
	}
	firstValue, err := readZigZagVarint(br)
	if err != nil {
		return nil, err
	}

	if miniBlocksU == 0 || blockSize == 0 || blockSize%miniBlocksU != 0 || blockSize/miniBlocksU != bitpack64.BlockLen {
		return nil, ErrInvalidHeader
	}

	d := &Decoder{
		r:             br,
		firstValue:    firstValue,
		previousValue: firstValue,
		totalCount:    int(totalCount),
		miniBlocks:    int(miniBlocksU),
	}

	if d.totalCount > 1 {
		if err := d.readBlockHeader(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// readBlockHeader reads one block's min_delta and its mini_blocks bit-width
// bytes, replacing any (by construction, already-exhausted) prior queue.
func (d *Decoder) readBlockHeader() error {
	minDelta, err := readZigZagVarint(d.r)
	if err != nil {
		return err
	}

	// mini_blocks comes from the stream, so the width bytes are read through a
	// limit rather than into a buffer of that size allocated up front.
	widths, err := io.ReadAll(io.LimitReader(d.r, int64(d.miniBlocks)))
	if err != nil {
		return err
	}
	if len(widths) < d.miniBlocks {
		return wrapReadErr(io.ErrUnexpectedEOF)
	}
	for _, w := range widths {
		if w > bitpack64.MaxWidth {
			return ErrUnsupportedWidth
		}
	}

	d.minDelta = minDelta
	d.bitWidths = widths
	return nil
}

// fetchMiniblock reads and unpacks the next miniblock's 64 deltas into
// d.deltas, reading a new block header first if the current one's widths
// have all been consumed.
func (d *Decoder) fetchMiniblock() error {
	if len(d.bitWidths) == 0 {
		if err := d.readBlockHeader(); err != nil {
			return err
		}
	}

	width := d.bitWidths[0]
	d.bitWidths = d.bitWidths[1:]

	out := make([]int64, bitpack64.BlockLen)
	if width == 0 {
		for i := range out {
			out[i] = d.minDelta
		}
		d.deltas = append(d.deltas, out...)
		return nil
	}

	packed := make([]byte, bitpack64.ByteLen(width))
	if _, err := io.ReadFull(d.r, packed); err != nil {
		return wrapReadErr(err)
	}

	var lane [bitpack64.BlockLen]uint64
	bitpack64.Unpack(packed, &lane, width)
	for i, residual := range lane {
		out[i] = int64(residual) + d.minDelta
	}
	d.deltas = append(d.deltas, out...)
	return nil
}

// ReadInteger returns the next value in the sequence, or ErrExhaustedStream
// once total_count values have already been returned.
func (d *Decoder) ReadInteger() (int64, error) {
	if d.valuesRead == d.totalCount {
		return 0, ErrExhaustedStream
	}
	d.valuesRead++

	if d.valuesRead == 1 {
		return d.firstValue, nil
	}

	if len(d.deltas) == 0 {
		if err := d.fetchMiniblock(); err != nil {
			return 0, err
		}
	}

	delta := d.deltas[0]
	d.deltas = d.deltas[1:]

	value := d.previousValue + delta
	d.previousValue = value
	return value, nil
}

// ReadIntegers drains the remaining sequence into a single slice.
func (d *Decoder) ReadIntegers() ([]int64, error) {
	// total_count comes from the stream, so it only sizes the initial
	// allocation up to a bound.
	capHint := d.totalCount - d.valuesRead
	if capHint < 0 || capHint > 1<<16 {
		capHint = 1 << 16
	}
	out := make([]int64, 0, capHint)
	for !d.AllRead() {
		v, err := d.ReadInteger()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// AllRead reports whether every encoded value has been returned.
func (d *Decoder) AllRead() bool {
	return d.valuesRead == d.totalCount
}

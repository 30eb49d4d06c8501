package deltapack64

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// VLQ framing is an unsigned LEB128 varint with the continuation bit in
// each byte's high bit. encoding/binary already implements exactly this
// format (Uvarint/PutUvarint, ReadUvarint).

// writeUvarint writes v to w as an unsigned VLQ.
func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// writeZigZagVarint ZigZag-encodes v and writes it as an unsigned VLQ.
func writeZigZagVarint(w io.Writer, v int64) error {
	return writeUvarint(w, ZigZagEncode64(v))
}

// readUvarint reads an unsigned VLQ from r, wrapping a short read as
// ErrTruncatedInput.
func readUvarint(r io.ByteReader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, wrapReadErr(err)
	}
	return v, nil
}

// readZigZagVarint reads an unsigned VLQ from r and ZigZag-decodes it.
func readZigZagVarint(r io.ByteReader) (int64, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	return ZigZagDecode64(u), nil
}

// wrapReadErr turns an EOF reached mid-field into ErrTruncatedInput,
// distinguishing a clean end of stream from one that ends where more bytes
// were expected. Other errors (a genuine I/O failure from the wrapped
// reader) pass through unchanged.
func wrapReadErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	}
	return err
}

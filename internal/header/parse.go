package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// record layout: 2B big endian length L, then L+extra bytes
type record struct {
	name  string
	extra int
	keep  func(h *Header, b []byte)
}

var records = [...]record{
	{name: "sync"},
	{name: "design"},
	{name: "info", extra: 1, keep: func(h *Header, b []byte) { h.Info = text(b) }},
	{name: "id", extra: 1, keep: func(h *Header, b []byte) { h.ID = text(b) }},
	{name: "field 5", extra: 1},
	{name: "field 6", extra: 1},
}

const lengthFieldSize = 4

// Parse classifies r as a .bit container or a raw binary and locates the
// payload. size is the total size of r. On success r is positioned at the
// first payload byte.
func Parse(r io.ReadSeeker, size int64) (Header, error) {
	l, err := peekLength(r)
	if err != nil {
		return Header{}, err
	}

	if l == RawSentinel {
		if size > math.MaxUint32 {
			return Header{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, size)
		}
		return Header{Raw: true, PayloadLength: uint32(size)}, nil
	}

	var (
		h        Header
		consumed int64
		scratch  []byte
	)
	for _, rec := range records {
		n, err := readLength(r)
		if err != nil {
			return Header{}, fmt.Errorf("%s record: %w", rec.name, err)
		}
		need := int(n) + rec.extra
		if cap(scratch) < need {
			scratch = make([]byte, need)
		}
		scratch = scratch[:need]
		if _, err := io.ReadFull(r, scratch); err != nil {
			return Header{}, fmt.Errorf("%s record: %w", rec.name, truncated(err))
		}
		if rec.keep != nil {
			rec.keep(&h, scratch)
		}
		consumed += 2 + int64(need)
	}

	var lb [lengthFieldSize]byte
	if _, err := io.ReadFull(r, lb[:]); err != nil {
		return Header{}, fmt.Errorf("payload length: %w", truncated(err))
	}
	consumed += lengthFieldSize

	h.PayloadLength = binary.BigEndian.Uint32(lb[:])
	h.PayloadOffset = uint64(consumed)

	if size-consumed != int64(h.PayloadLength) {
		return Header{}, fmt.Errorf("%w: header declares %d bytes, file has %d after offset %d",
			ErrLengthMismatch, h.PayloadLength, size-consumed, consumed)
	}
	return h, nil
}

// peekLength reads the leading length field and seeks back to where it was.
func peekLength(r io.ReadSeeker) (uint16, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	l, err := readLength(r)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return l, nil
}

func readLength(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, truncated(err)
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedHeader
	}
	return err
}

func text(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

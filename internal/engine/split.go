package engine

import (
	"errors"
	"fmt"
	"io"
)

var ErrSeekVerification = errors.New("seek verification failed")

var zeroBlock [BlockSize]byte

// WriteFull copies payloadLen bytes from src into w and zero pads the result
// to a multiple of BlockSize. src is returned to its starting position so the
// same payload can be read again for splitting.
func WriteFull(src io.ReadSeeker, w io.Writer, payloadLen uint32) (int64, error) {
	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	size := alignUp(int64(payloadLen), BlockSize)
	if _, err := copyPad(w, src, int64(payloadLen), size); err != nil {
		return 0, err
	}

	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeekVerification, err)
	}
	if cur, err := src.Seek(0, io.SeekCurrent); err != nil || cur != pos {
		return 0, fmt.Errorf("%w: at %d, want %d", ErrSeekVerification, cur, pos)
	}
	return size, nil
}

// Split is one fixed size piece of the payload. Its content is produced by
// WriteTo, which must run before the Splitter is advanced again.
type Split struct {
	Index int // 1-based
	Size  int64

	src  io.Reader
	data int64 // payload bytes, the rest is padding
}

// WriteTo copies the split's payload bytes and pads with zeros up to Size.
func (s *Split) WriteTo(w io.Writer) (int64, error) {
	if _, err := copyPad(w, s.src, s.data, s.Size); err != nil {
		return 0, err
	}
	return s.Size, nil
}

// Splitter cuts a payload into SplitSize pieces. It consumes the source
// sequentially and cannot be rewound.
type Splitter struct {
	src  io.Reader
	left int64
	plan Plan
	idx  int
}

// NewSplitter expects src to be positioned at the first payload byte.
func NewSplitter(src io.Reader, payloadLen uint32, plan Plan) *Splitter {
	return &Splitter{src: src, left: int64(payloadLen), plan: plan}
}

// Next returns the next split, or io.EOF once all of them were handed out.
func (s *Splitter) Next() (*Split, error) {
	if s.idx >= s.plan.Splits {
		return nil, io.EOF
	}
	s.idx++

	data := min(s.left, s.plan.SplitSize)
	s.left -= data
	return &Split{Index: s.idx, Size: s.plan.SplitSize, src: s.src, data: data}, nil
}

// copyPad copies n bytes from r, then writes zeros until size bytes went to
// w. The payload size was checked against the file, so a source ending early
// means it changed underneath us.
func copyPad(w io.Writer, r io.Reader, n, size int64) (int64, error) {
	copied, err := io.CopyN(w, r, n)
	if err == io.EOF {
		return copied, fmt.Errorf("payload ends after %d of %d bytes: %w", copied, n, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return copied, err
	}
	for pad := size - copied; pad > 0; {
		k := min(pad, BlockSize)
		if _, err := w.Write(zeroBlock[:k]); err != nil {
			return copied, err
		}
		pad -= k
	}
	return copied, nil
}

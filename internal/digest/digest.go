package digest

import (
	"encoding/hex"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

type Params struct {
	Size int    // bytes (32 for BLAKE2b-256)
	Key  []byte // optional MAC key, nil for a plain digest
}

var Default = Params{Size: blake2b.Size256}

func New(p Params) (hash.Hash, error) {
	return blake2b.New(p.Size, p.Key)
}

// Writer tees everything written to it into a running digest.
type Writer struct {
	w io.Writer
	h hash.Hash
}

func NewWriter(w io.Writer, p Params) (*Writer, error) {
	h, err := New(p)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, h: h}, nil
}

func (d *Writer) Write(b []byte) (int, error) {
	n, err := d.w.Write(b)
	d.h.Write(b[:n])
	return n, err
}

// Sum returns the hex digest of the bytes written so far.
func (d *Writer) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

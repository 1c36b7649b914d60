package header

import "errors"

// Sentinel stored in the first two bytes of a file without a .bit header.
const RawSentinel = 0xFFFF

// Header describes where the configuration payload lives inside an input file.
type Header struct {
	Raw           bool   // no container header, the whole file is payload
	PayloadLength uint32 // bytes of payload
	PayloadOffset uint64 // first payload byte

	// text records of a container, cut at the first NUL
	Info string
	ID   string
}

var (
	ErrTruncatedHeader = errors.New("header: truncated")
	ErrLengthMismatch  = errors.New("invalid file length")
	ErrPayloadTooLarge = errors.New("header: payload does not fit in 32 bits")
)

// Blocks returns the number of whole 16 KiB blocks and the leftover bytes.
func (h Header) Blocks() (blocks, rest uint32) {
	return h.PayloadLength >> 14, h.PayloadLength & 0x3fff
}

package engine

type Options struct {
	InPath  string
	OutPath string // base name for generated files, InPath when empty
	Digest  bool   // compute a BLAKE2b-256 digest of every output
	Exact   bool   // skip the all-zero split after a payload that fills its last split
}

const (
	BlockSize int64 = 0x4000   // 16 KiB, alignment of the full image
	SplitSize int64 = 0x120000 // 1152 KiB per split file
)

// Plan holds the output sizes derived from a payload length.
type Plan struct {
	FullSize  int64
	SplitSize int64
	Splits    int
}

func NewPlan(payloadLen uint32, exact bool) Plan {
	n := int64(payloadLen)
	splits := n/SplitSize + 1
	if exact {
		splits = (n + SplitSize - 1) / SplitSize
	}
	return Plan{
		FullSize:  alignUp(n, BlockSize),
		SplitSize: SplitSize,
		Splits:    int(splits),
	}
}

func alignUp(n, align int64) int64 {
	return (n + align - 1) &^ (align - 1)
}

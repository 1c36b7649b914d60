package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"bit2bin/internal/digest"
	"bit2bin/internal/header"
)

var (
	ErrInputNotFound      = errors.New("input file not found")
	ErrCannotCreateOutput = errors.New("cannot create output file")
	ErrOutputIsInput      = errors.New("output would overwrite the input file")
)

type Stage int

const (
	Start Stage = iota
	HeaderParsed
	FullWritten
	Splitting
	Done
	Failed
)

func (s Stage) String() string {
	switch s {
	case Start:
		return "start"
	case HeaderParsed:
		return "header parsed"
	case FullWritten:
		return "full written"
	case Splitting:
		return "splitting"
	case Done:
		return "done"
	default:
		return "failed"
	}
}

type Output struct {
	Path   string
	Size   int64
	Digest string // hex, empty unless Options.Digest
}

type Result struct {
	Stage   Stage
	InSize  int64
	Header  header.Header
	Split   int // split being written while Stage is Splitting
	Outputs []Output
}

const writeBuf = 64 * 1024

// Run converts opt.InPath into a block aligned full image and a series of
// split images. Files written before a failure are left in place.
func Run(opt Options) (res Result, retErr error) {
	defer func() {
		if retErr != nil {
			res.Stage = Failed
		}
	}()

	src, err := os.Open(opt.InPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%w: %s", ErrInputNotFound, opt.InPath)
		}
		return res, err
	}
	defer src.Close()

	stat, err := src.Stat()
	if err != nil {
		return res, err
	}
	res.InSize = stat.Size()
	log.Printf("input: %s (%d bytes)", opt.InPath, res.InSize)

	h, err := header.Parse(src, res.InSize)
	if err != nil {
		return res, err
	}
	res.Header = h
	res.Stage = HeaderParsed
	if h.Raw {
		log.Printf("input is not a .bit file, will be processed as .bin")
	} else {
		log.Printf(" info: %s", h.Info)
		log.Printf(" id: %s", h.ID)
	}
	blocks, rest := h.Blocks()
	log.Printf("input binary has: %d blocks of 16Kb, and %d bytes", blocks, rest)

	names := NewNames(opt.InPath, opt.OutPath)
	plan := NewPlan(h.PayloadLength, opt.Exact)
	if err := guardInput(opt.InPath, stat, names, plan); err != nil {
		return res, err
	}

	name := names.Full()
	log.Printf("writing full: %s", name)
	out, err := writeOutput(name, opt.Digest, func(w io.Writer) (int64, error) {
		return WriteFull(src, w, h.PayloadLength)
	})
	if err != nil {
		return res, err
	}
	res.Outputs = append(res.Outputs, out)
	res.Stage = FullWritten

	sp := NewSplitter(src, h.PayloadLength, plan)
	for {
		split, err := sp.Next()
		if err == io.EOF {
			break
		}
		res.Stage = Splitting
		res.Split = split.Index
		name := names.Split(split.Index)
		log.Printf("writing split: %s", name)
		out, err := writeOutput(name, opt.Digest, split.WriteTo)
		if err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, out)
	}

	res.Stage = Done
	return res, nil
}

// guardInput rejects a run whose generated names point back at the input,
// since creating them would truncate it before it is read.
func guardInput(inPath string, inInfo os.FileInfo, names Names, plan Plan) error {
	inAbs := inPath
	if p, err := filepath.EvalSymlinks(inPath); err == nil {
		inAbs = p
	}
	inAbs, err := filepath.Abs(inAbs)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute input path: %w", err)
	}

	check := func(name string) error {
		if info, err := os.Stat(name); err == nil && os.SameFile(inInfo, info) {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, name)
		}
		if abs, err := filepath.Abs(name); err == nil && abs == inAbs {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, name)
		}
		return nil
	}

	if err := check(names.Full()); err != nil {
		return err
	}
	for i := 1; i <= plan.Splits; i++ {
		if err := check(names.Split(i)); err != nil {
			return err
		}
	}
	return nil
}

// writeOutput creates name, lets fill write its content and closes it before
// returning, so only one output is open at a time.
func writeOutput(name string, withDigest bool, fill func(io.Writer) (int64, error)) (out Output, retErr error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return out, fmt.Errorf("%w: %s", ErrCannotCreateOutput, name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, writeBuf)
	var w io.Writer = bw
	var dw *digest.Writer
	if withDigest {
		if dw, err = digest.NewWriter(bw, digest.Default); err != nil {
			return out, err
		}
		w = dw
	}

	n, err := fill(w)
	if err != nil {
		return out, fmt.Errorf("write %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		return out, fmt.Errorf("write %s: %w", name, err)
	}

	out = Output{Path: name, Size: n}
	if dw != nil {
		out.Digest = dw.Sum()
	}
	return out, nil
}

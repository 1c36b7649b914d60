package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errArgCount = errors.New("invalid number of parameters")

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "%s version %s - %s\n\n", program, version, description)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] <input_file> [<output_file>]\n\n", program)
	fmt.Fprintln(w, "  <input_file>   Input BIT file")
	fmt.Fprintln(w, "  <output_file>  Output BIN file")
	fmt.Fprintln(w)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// parseFlags returns flag.ErrHelp when nothing was asked for, which is not a
// failure. Flags may appear before, between or after the file arguments.
func parseFlags(args []string, out io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &Config{}
	fs.BoolVar(&cfg.Quiet, "q", false, "do not print progress")
	fs.BoolVar(&cfg.Digest, "digest", false, "print a BLAKE2b-256 digest of every output")
	fs.BoolVar(&cfg.Exact, "exact", false, "skip the all-zero split after a payload that fills its last split")
	fs.BoolVar(&cfg.ShowVer, "version", false, "print version and exit")

	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			usage(out, fs)
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		files = append(files, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if cfg.ShowVer {
		return cfg, nil
	}

	switch len(files) {
	case 0:
		usage(out, fs)
		return nil, flag.ErrHelp
	case 1, 2:
	default:
		return nil, errArgCount
	}

	cfg.InPath = files[0]
	if len(files) > 1 {
		cfg.OutPath = files[1]
	}
	return cfg, nil
}

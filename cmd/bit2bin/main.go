package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"bit2bin/internal/engine"
)

const exitFailure = -1

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func die(err error) {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	log.Printf("error: %v", err)
	os.Exit(exitFailure)
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		die(err)
	}
	if cfg.ShowVer {
		fmt.Printf("%s version %s\n", program, version)
		return
	}

	if err := validate(cfg); err != nil {
		die(err)
	}

	if cfg.Quiet {
		log.SetOutput(io.Discard)
	}
	log.Printf("%s version %s", program, version)

	start := time.Now()
	res, err := engine.Run(engine.Options{
		InPath:  cfg.InPath,
		OutPath: cfg.OutPath,
		Digest:  cfg.Digest,
		Exact:   cfg.Exact,
	})
	if err != nil {
		die(err)
	}

	for _, out := range res.Outputs {
		if out.Digest != "" {
			fmt.Printf("%s  %s\n", out.Digest, out.Path)
		}
	}
	log.Printf("%d file(s) successfully created from %s in %s",
		len(res.Outputs), humanSize(res.InSize), time.Since(start))
}

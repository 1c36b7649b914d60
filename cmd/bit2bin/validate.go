package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bit2bin/internal/engine"
)

func validate(cfg *Config) error {
	if cfg.InPath == "" {
		return errors.New("input path is required")
	}

	// input file must exist and be a regular file
	inInfo, err := os.Stat(cfg.InPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", engine.ErrInputNotFound, cfg.InPath)
		}
		return fmt.Errorf("cannot stat input file: %w", err)
	}
	if !inInfo.Mode().IsRegular() {
		return fmt.Errorf("input path %q is not a regular file", cfg.InPath)
	}

	if cfg.OutPath == "" {
		return nil
	}
	outDir := filepath.Dir(cfg.OutPath)
	outDirInfo, err := os.Stat(outDir)
	if err != nil {
		return fmt.Errorf("cannot access output directory %q: %w", outDir, err)
	}
	if !outDirInfo.IsDir() {
		return fmt.Errorf("output directory %q is not a directory", outDir)
	}
	return nil
}

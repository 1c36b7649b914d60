package main

type Config struct {
	InPath  string
	OutPath string // optional
	Quiet   bool
	Digest  bool
	Exact   bool
	ShowVer bool
}

const (
	program     = "Bit2Bin_zx3"
	version     = "0.10 (2023-10-05)"
	description = "strip .bit header and split binary to 1152Kb files"
)

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bit2bin/internal/engine"
)

func TestParseFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Config
	}{
		{"input only", []string{"core.bit"}, Config{InPath: "core.bit"}},
		{"input and output", []string{"core.bit", "rom.bin"}, Config{InPath: "core.bit", OutPath: "rom.bin"}},
		{"flags", []string{"-q", "-digest", "-exact", "core.bit"}, Config{InPath: "core.bit", Quiet: true, Digest: true, Exact: true}},
		{"version", []string{"-version"}, Config{ShowVer: true}},
		{"flags after files", []string{"core.bit", "rom.bin", "-q"}, Config{InPath: "core.bit", OutPath: "rom.bin", Quiet: true}},
		{"flags between files", []string{"core.bit", "-exact", "rom.bin", "-digest"}, Config{InPath: "core.bit", OutPath: "rom.bin", Exact: true, Digest: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parseFlags(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags(nil, &out)
	require.ErrorIs(t, err, flag.ErrHelp)
	require.Contains(t, out.String(), "<input_file> [<output_file>]")
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"a", "b", "c"}, &bytes.Buffer{})
	require.ErrorIs(t, err, errArgCount)

	_, err = parseFlags([]string{"a", "-q", "b", "c"}, &bytes.Buffer{})
	require.ErrorIs(t, err, errArgCount)

	_, err = parseFlags([]string{"-nope", "a"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "core.bit")
	require.NoError(t, os.WriteFile(in, []byte{0xFF, 0xFF}, 0o644))

	require.NoError(t, validate(&Config{InPath: in}))
	require.NoError(t, validate(&Config{InPath: in, OutPath: filepath.Join(dir, "rom.bin")}))

	err := validate(&Config{InPath: filepath.Join(dir, "missing.bit")})
	require.ErrorIs(t, err, engine.ErrInputNotFound)

	require.Error(t, validate(&Config{InPath: dir}))
	require.Error(t, validate(&Config{InPath: in, OutPath: filepath.Join(dir, "no", "rom.bin")}))
}

func TestHumanSize(t *testing.T) {
	require.Equal(t, "100 B", humanSize(100))
	require.Equal(t, "1.5 KiB", humanSize(1536))
	require.Equal(t, "1.1 MiB", humanSize(1179648))
}

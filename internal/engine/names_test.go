package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		out   string
		full  string
		split string
	}{
		{"input only", "core.bit", "", "core_[full].zx3", "core_[split_01].zx3"},
		{"input in dir", "fw/zx3/core.bit", "", "fw/zx3/core_[full].zx3", "fw/zx3/core_[split_01].zx3"},
		{"output with ext", "core.bit", "out/rom.bin", "out/rom_[full].bin", "out/rom_[split_01].bin"},
		{"output without ext", "core.bit", "rom", "rom_[full].zx3", "rom_[split_01].zx3"},
		{"dot in dir only", "in.d/core", "", "in.d/core_[full].zx3", "in.d/core_[split_01].zx3"},
		{"windows path", `C:\fw\core.bit`, "", `C:\fw\core_[full].zx3`, `C:\fw\core_[split_01].zx3`},
		{"drive only", "C:core.bit", "", "C:core_[full].zx3", "C:core_[split_01].zx3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNames(tc.in, tc.out)
			require.Equal(t, tc.full, n.Full())
			require.Equal(t, tc.split, n.Split(1))
		})
	}
}

func TestNames_SplitCounter(t *testing.T) {
	n := NewNames("a.bit", "b.rom")
	require.Equal(t, "b_[split_09].rom", n.Split(9))
	require.Equal(t, "b_[split_12].rom", n.Split(12))
	require.Equal(t, "b_[split_100].rom", n.Split(100))
}

func TestFileNameAndExtension(t *testing.T) {
	require.Equal(t, "core.bit", FileName("a/b:c\\core.bit"))
	require.Equal(t, "core", FileName("core"))
	require.Equal(t, "", FileName("dir/"))
	require.Equal(t, ".bit", Extension("a.b/core.bit"))
	require.Equal(t, "", Extension("a.b/core"))
	require.Equal(t, ".gz", Extension("core.tar.gz"))
}

package engine

import (
	"fmt"
	"strings"
)

const DefaultExt = ".zx3"

// Names builds the file names of the generated images. Outputs land next to
// the base path: its directory and stem are kept, the extension is replaced.
type Names struct {
	prefix string
	ext    string
}

func NewNames(inPath, outPath string) Names {
	path := inPath
	if outPath != "" {
		path = outPath
	}
	ext := Extension(path)
	newExt := ext
	if outPath == "" || ext == "" {
		newExt = DefaultExt
	}
	return Names{prefix: path[:len(path)-len(ext)], ext: newExt}
}

func (n Names) Full() string {
	return n.prefix + "_[full]" + n.ext
}

// Split names the idx-th split, counting from 1.
func (n Names) Split(idx int) string {
	return fmt.Sprintf("%s_[split_%02d]%s", n.prefix, idx, n.ext)
}

// FileName strips everything up to the last '/', '\' or ':'.
func FileName(path string) string {
	return path[strings.LastIndexAny(path, `/\:`)+1:]
}

// Extension returns the file name's suffix from its last '.', or "".
func Extension(path string) string {
	name := FileName(path)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

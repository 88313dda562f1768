package nowiki

import (
	"path/filepath"
	"strings"
)

// ResolveOutputPath determines the expanded-tree output path for a wiki
// source path: the extension is swapped for .json in the same directory.
func ResolveOutputPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".json"
}

func MustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

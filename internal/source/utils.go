package source

import (
	"path/filepath"
	"strings"
)

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// An empty LineIdx means the whole file is a single line.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search for the largest lineIdx[i] < off: the last newline before
	// off. A newline byte itself belongs to the line it ends.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	line := hi + 1              // 0-based line index: one past the newlines before off
	startOff := lineIdx[hi] + 1 // the line starts right after the previous \n

	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// Keep a single canonical form for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath expresses target relative to baseDir. When target falls
// outside baseDir (the relative form would need to climb above it), it
// falls back to target's normalized absolute form instead of an escaping
// "../.." path.
func RelativePath(target, baseDir string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || strings.HasPrefix(rel, "..") {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}

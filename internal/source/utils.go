package source

import (
	"path/filepath"
	"strings"
)

func buildLineIndex(chars []rune) []int {
	out := make([]int, 0, len(chars)/32)
	for i, r := range chars {
		if r == '\n' {
			out = append(out, i)
		}
	}
	return out
}

func toLineCol(lineIdx []int, off int) LineCol {
	// бинпоиск: находим первый '\n' с позицией >= off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // количество переводов строки перед off

	startOff := 0
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	return LineCol{Line: line + 1, Col: off - startOff + 1}
}

// DisplayPath prepares a path for diagnostics: relative to baseDir when it lies
// inside it, otherwise cleaned and slash-separated.
func DisplayPath(path, baseDir string) string {
	clean := filepath.ToSlash(filepath.Clean(path))
	if baseDir == "" {
		return clean
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return clean
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return clean
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return clean
	}
	return filepath.ToSlash(rel)
}

package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"swc/internal/driver"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"namespace a;",
	"namespace a.b.c",
	"namespace n; var x = 1 + 2 * 3;",
	"namespace n; using System.Text;",
	"namespace n; 1 = 2 = 3;",
	"namespace n; \"a\"\"b\";",
	"namespace n; \"open\n",
	"namespace n; 2147483648;",
	"\ufeffnamespace bom;",
	"@#$ ;;; ) (",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.sw файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sw" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

// decodeInput mirrors what the driver does with file bytes; undecodable
// input is taken as is.
func decodeInput(input []byte) string {
	s, err := driver.Decode(input)
	if err != nil {
		return string(input)
	}
	return s
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

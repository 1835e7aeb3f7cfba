package fuzztests

import (
	"testing"
	"time"

	"swc/internal/source"
	"swc/internal/syntax"
	"swc/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		tree := syntax.Parse(source.FromString(decodeInput(input), "fuzz.sw"))
		if err := testkit.CheckSpans(tree.Root(), tree.Text()); err != nil {
			t.Fatalf("input %q: %v", truncateForLog(input, 200), err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// Recovery must always consume a token, so a timeout means a loop.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// случаи, на которых восстановление не продвигается без пропуска токена
	f.Add([]byte("namespace n; ) ) )"))
	f.Add([]byte("namespace n; var var var"))
	f.Add([]byte("namespace n; using ;"))
	f.Add([]byte("namespace n; 1 + + + ;"))
	f.Add([]byte(";;;;;;;;"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = syntax.ParseString(decodeInput(input), "fuzz.sw")
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

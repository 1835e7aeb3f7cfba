package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swc/internal/diagfmt"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var out, errOut bytes.Buffer
	code := execute(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseCommandPrintsTree(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.sw": "namespace a; 1 + 2;"})
	res := runCLI(t, "", "-C", dir, "parse", "a.sw")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "CompilationUnit\n") || !strings.Contains(res.stdout, "BinaryExpr") {
		t.Errorf("stdout:\n%s", res.stdout)
	}
	if strings.Contains(res.stdout, "\x1b[") {
		t.Error("color leaked into non-terminal output")
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	dir := writeTree(t, map[string]string{"bad.sw": "namespace a; @"})
	res := runCLI(t, "", "-C", dir, "parse", "--tree=false", "bad.sw")
	if res.code != 0 {
		t.Fatalf("exit %d", res.code)
	}
	if !strings.Contains(res.stderr, "Bad character input: '@'.") {
		t.Errorf("stderr:\n%s", res.stderr)
	}
}

func TestTokenizeJSON(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.sw": "namespace a;"})
	res := runCLI(t, "", "-C", dir, "tokenize", "--format", "json", "a.sw")
	if res.code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	var tokens []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(res.stdout), &tokens); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	// namespace, пробел, a, ;, EOF
	if len(tokens) != 5 {
		t.Errorf("got %d tokens: %+v", len(tokens), tokens)
	}
}

func TestTokenizeRejectsUnknownFormat(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.sw": "namespace a;"})
	res := runCLI(t, "", "-C", dir, "tokenize", "--format", "xml", "a.sw")
	if res.code != 1 || !strings.Contains(res.stderr, "unknown format") {
		t.Errorf("code=%d stderr=%s", res.code, res.stderr)
	}
}

func TestDiagExitStatus(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/ok.sw":  "namespace ok;",
		"src/bad.sw": "namespace bad; var x = ;",
	})

	res := runCLI(t, "", "-C", dir, "diag", "--format", "short", "src/ok.sw")
	if res.code != 0 {
		t.Errorf("clean file: exit %d\n%s%s", res.code, res.stdout, res.stderr)
	}

	res = runCLI(t, "", "-C", dir, "diag", "--format", "short", "src")
	if res.code != 1 {
		t.Errorf("dirty dir: exit %d", res.code)
	}
	if !strings.Contains(res.stdout, filepath.Join("src", "bad.sw")+": ") {
		t.Errorf("stdout:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "2 files checked, 1 with problems") {
		t.Errorf("stderr:\n%s", res.stderr)
	}
}

func TestDiagUsesManifest(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"swc.toml": "[package]\nname = \"demo\"\n[build]\nsources = [\"src\"]\n[diagnostics]\nformat = \"json\"\n",
		"src/a.sw": "namespace a; @",
		"other.sw": "@@@",
	})
	res := runCLI(t, "", "-C", dir, "diag")
	if res.code != 1 {
		t.Fatalf("exit %d, stderr:\n%s", res.code, res.stderr)
	}
	var payload diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if payload.Count == 0 {
		t.Error("no diagnostics in json output")
	}
	if strings.Contains(res.stdout, "other.sw") {
		t.Error("file outside [build].sources was checked")
	}
}

func TestDiagWithoutPathsOrManifest(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, "", "-C", dir, "diag")
	if res.code != 1 || !strings.Contains(res.stderr, "no swc.toml") {
		t.Errorf("code=%d stderr=%s", res.code, res.stderr)
	}
}

func TestFlagOverridesManifest(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"swc.toml": "[diagnostics]\ncolor = \"on\"\nmax = 1\n",
		"a.sw":     "@ @ @",
	})
	res := runCLI(t, "", "-C", dir, "--color", "off", "diag", "--format", "pretty", "a.sw")
	if strings.Contains(res.stdout, "\x1b[") {
		t.Error("--color off did not override the manifest")
	}
	if n := strings.Count(res.stdout, "ERROR["); n != 1 {
		t.Errorf("manifest max = 1 not applied: %d diagnostics shown", n)
	}
}

func TestInvalidColorFlag(t *testing.T) {
	res := runCLI(t, "", "-C", t.TempDir(), "--color", "rainbow", "version")
	if res.code != 1 || !strings.Contains(res.stderr, "invalid --color") {
		t.Errorf("code=%d stderr=%s", res.code, res.stderr)
	}
}

func TestReplPlain(t *testing.T) {
	res := runCLI(t, "namespace a;\n:q\n", "-C", t.TempDir(), "repl")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if strings.Count(res.stdout, "CompilationUnit") != 1 {
		t.Errorf("stdout:\n%s", res.stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	res := runCLI(t, "", "-C", t.TempDir(), "version", "--format", "json")
	var payload versionPayload
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if payload.Tool != "swc" || payload.Version == "" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestTimingsAndTrace(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.sw": "namespace a;"})
	res := runCLI(t, "", "-C", dir, "--timings", "--trace", "-", "parse", "a.sw")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "timings:") {
		t.Errorf("no timing summary:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "parse") {
		t.Errorf("no trace output:\n%s", res.stderr)
	}
}

func TestCPUProfileFlag(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.sw": "namespace a;"})
	res := runCLI(t, "", "-C", dir, "--cpu-profile", "cpu.out", "--mem-profile", "mem.out", "parse", "a.sw")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	for _, name := range []string{"cpu.out", "mem.out"} {
		if info, err := os.Stat(filepath.Join(dir, name)); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

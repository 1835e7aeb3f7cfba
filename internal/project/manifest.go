package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Manifest is a decoded swc.toml.
type Manifest struct {
	Path string `toml:"-"` // путь к самому swc.toml
	Root string `toml:"-"` // каталог, содержащий swc.toml

	Package     PackageSection     `toml:"package"`
	Build       BuildSection       `toml:"build"`
	Diagnostics DiagnosticsSection `toml:"diagnostics"`

	defined map[string]bool
}

type PackageSection struct {
	Name string `toml:"name"`
}

type BuildSection struct {
	Sources []string `toml:"sources"`
}

// DiagnosticsSection carries defaults for the CLI flags of the same names.
type DiagnosticsSection struct {
	Max    int    `toml:"max"`
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

var (
	validColors  = []string{"auto", "on", "off"}
	validFormats = []string{"short", "pretty", "json"}
)

// LoadManifest reads and validates the manifest at path.
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m := &Manifest{Path: path, Root: filepath.Dir(path)}
	meta, err := toml.Decode(string(data), m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	m.defined = make(map[string]bool)
	for _, key := range []string{"max", "color", "format"} {
		m.defined[key] = meta.IsDefined("diagnostics", key)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	d := &m.Diagnostics
	if d.Max < 0 {
		return fmt.Errorf("invalid [diagnostics].max %d: must not be negative", d.Max)
	}
	if d.Color != "" && !oneOf(d.Color, validColors) {
		return fmt.Errorf("invalid [diagnostics].color %q (expected: %s)", d.Color, strings.Join(validColors, "|"))
	}
	if d.Format != "" && !oneOf(d.Format, validFormats) {
		return fmt.Errorf("invalid [diagnostics].format %q (expected: %s)", d.Format, strings.Join(validFormats, "|"))
	}
	for _, src := range m.Build.Sources {
		if _, err := m.resolve(src); err != nil {
			return err
		}
	}
	return nil
}

// IsDefined reports whether [diagnostics].key was set explicitly, so flags
// know whether to defer to it.
func (m *Manifest) IsDefined(key string) bool {
	return m != nil && m.defined[key]
}

// SourcePaths returns [build].sources resolved against the manifest
// directory. An empty list means the manifest directory itself.
func (m *Manifest) SourcePaths() []string {
	if len(m.Build.Sources) == 0 {
		return []string{m.Root}
	}
	out := make([]string, 0, len(m.Build.Sources))
	for _, src := range m.Build.Sources {
		p, _ := m.resolve(src) // проверено в validate
		out = append(out, p)
	}
	return out
}

func (m *Manifest) resolve(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", fmt.Errorf("invalid [build].sources entry: empty path")
	}
	if filepath.IsAbs(src) {
		return "", fmt.Errorf("invalid [build].sources entry %q: must be relative", src)
	}
	p := filepath.Join(m.Root, filepath.FromSlash(src))
	if !pathWithin(m.Root, p) {
		return "", fmt.Errorf("invalid [build].sources entry %q: escapes project root", src)
	}
	return p, nil
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

func pathWithin(root, path string) bool {
	if root == "" || path == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

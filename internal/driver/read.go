package driver

import (
	"context"
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"swc/internal/source"
	"swc/internal/trace"
)

// ErrTooLarge is returned by Load for files over Driver.MaxFileSize.
var ErrTooLarge = errors.New("file too large")

// Load reads path and decodes it into a source.Text named path.
func (d *Driver) Load(ctx context.Context, path string) (*source.Text, error) {
	_, span := trace.Begin(ctx, trace.ScopePhase, "read")
	defer span.WithExtra("file", path).End("")
	defer d.Timer.Start("read")()

	info, err := d.Fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory", path)
	}
	size, err := safecast.Conv[int](info.Size())
	if err != nil {
		return nil, fmt.Errorf("read %s: size: %w", path, err)
	}
	if d.MaxFileSize > 0 && size > d.MaxFileSize {
		return nil, fmt.Errorf("read %s: %d bytes: %w", path, size, ErrTooLarge)
	}

	data, err := afero.ReadFile(d.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return source.FromString(text, path), nil
}

// Decode turns file bytes into text. A UTF-8 or UTF-16 byte order mark
// selects the encoding and is dropped; without one the bytes are UTF-8.
// Invalid UTF-8 sequences become U+FFFD.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

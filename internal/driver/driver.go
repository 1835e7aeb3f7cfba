// Package driver runs the front end over files: reading and decoding,
// tokenizing, parsing, and parsing whole directories in parallel.
package driver

import (
	"runtime"

	"github.com/spf13/afero"

	"swc/internal/observ"
)

// SourceExt is the file extension of Selawik sources.
const SourceExt = ".sw"

// Driver holds what every file operation needs. The zero value is not
// usable; build one with New.
type Driver struct {
	Fs    afero.Fs
	Timer *observ.Timer // nil отключает замеры
	Jobs  int           // 0 означает GOMAXPROCS
	// MaxFileSize rejects larger files before reading them; 0 means no limit.
	MaxFileSize int
	// Progress, if set, receives stage changes from ParseAll. It is called
	// from worker goroutines.
	Progress func(Event)
}

// New returns a driver reading from fs.
func New(fs afero.Fs) *Driver {
	return &Driver{Fs: fs}
}

// NewOS returns a driver over the real filesystem.
func NewOS() *Driver {
	return New(afero.NewOsFs())
}

func (d *Driver) jobs() int {
	if d.Jobs > 0 {
		return d.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

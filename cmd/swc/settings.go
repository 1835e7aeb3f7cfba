package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"swc/internal/driver"
	"swc/internal/observ"
	"swc/internal/project"
)

// switchMode is an auto|on|off flag value; auto asks the terminal.
type switchMode string

const (
	modeAuto switchMode = "auto"
	modeOn   switchMode = "on"
	modeOff  switchMode = "off"
)

func readSwitch(flag, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return modeAuto, nil
	case "on":
		return modeOn, nil
	case "off":
		return modeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// enabled resolves the mode for one stream.
func (m switchMode) enabled(stream any) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(stream)
	}
}

// settings are the global flags merged with swc.toml. A flag given on the
// command line always wins over the manifest.
type settings struct {
	dir            string
	color          switchMode
	quiet          bool
	timings        bool
	maxDiagnostics int
	manifest       *project.Manifest // nil без swc.toml
	driver         *driver.Driver
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	dir, err := flags.GetString("chdir")
	if err != nil {
		return nil, fmt.Errorf("failed to get chdir flag: %w", err)
	}
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return nil, err
	}

	s := &settings{
		dir:            dir,
		quiet:          quiet,
		timings:        timings,
		maxDiagnostics: maxDiagnostics,
		driver:         driver.NewOS(),
	}
	if timings {
		s.driver.Timer = observ.NewTimer()
	}

	m, err := project.Discover(s.driver.Fs, dir)
	switch {
	case errors.Is(err, project.ErrNoManifest):
	case err != nil:
		return nil, err
	default:
		s.manifest = m
		if m.IsDefined("color") && !flags.Changed("color") {
			colorFlag = m.Diagnostics.Color
		}
		if m.IsDefined("max") && !flags.Changed("max-diagnostics") {
			s.maxDiagnostics = m.Diagnostics.Max
		}
	}

	if s.color, err = readSwitch("color", colorFlag); err != nil {
		return nil, err
	}
	if s.maxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must be >= 0, got %d", s.maxDiagnostics)
	}
	return s, nil
}

// path resolves a command-line path against the working directory.
func (s *settings) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.dir, p)
}

// diagFormat picks the diagnostics format: flag, then manifest, then pretty.
func (s *settings) diagFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && s.manifest != nil && s.manifest.IsDefined("format") {
		format = s.manifest.Diagnostics.Format
	}
	return strings.ToLower(format), nil
}

func (s *settings) optionalPath(p string) string {
	if p == "" {
		return ""
	}
	return s.path(p)
}

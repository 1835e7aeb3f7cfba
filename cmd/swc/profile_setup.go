package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swc/internal/prof"
)

// setupProfiling starts the profilers named by the persistent flags and
// registers their shutdown with the app.
func setupProfiling(cmd *cobra.Command, a *app) error {
	root := cmd.Root()

	var opts prof.Options
	var err error
	if opts.CPU, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}

	s := a.settings
	opts.CPU, opts.Mem, opts.Trace = s.optionalPath(opts.CPU), s.optionalPath(opts.Mem), s.optionalPath(opts.Trace)
	session, err := prof.Start(s.driver.Fs, opts)
	if err != nil {
		return err
	}
	a.onExit(func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	})
	return nil
}

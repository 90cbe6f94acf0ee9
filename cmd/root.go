// Package cmd provides the CLI commands for track.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/track/internal/output"
	"github.com/manav03panchal/track/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagConfig string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "track",
	Short: "Track time spent on projects from the command line",
	Long: `track records work sessions per project and tag, and reports the totals
rounded to a billing interval.

Examples:
  track start --project "Client Work" --tag review
  track stop
  track add --project client-work --time 45m
  track report --from 2026-02-01 --to 2026-02-28
  track export --format csv --output sessions.csv`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initContext,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

// skipContext lists commands that never touch the ledger.
var skipContext = map[string]bool{
	"completion": true,
	"help":       true,
	"version":    true,
}

func initContext(cmd *cobra.Command, args []string) error {
	if skipContext[cmd.Name()] {
		return nil
	}

	format, err := output.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	colorMode, err := output.ParseColorMode(flagColor)
	if err != nil {
		return err
	}

	opts := runtime.DefaultOptions()
	opts.ConfigPath = flagConfig
	opts.Format = format
	opts.ColorMode = colorMode
	opts.Debug = flagDebug
	opts.Stdout = cmd.OutOrStdout()

	ctx, err = runtime.New(opts)
	return err
}

// Execute runs the command tree and renders any error. It returns the error
// so main can set the exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		runtime.PrintError(ctx, err, rootCmd.ErrOrStderr())
	}
	if ctx != nil {
		if closeErr := ctx.Close(); closeErr != nil && err == nil {
			runtime.PrintError(ctx, closeErr, rootCmd.ErrOrStderr())
			err = closeErr
		}
		ctx = nil
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default $XDG_CONFIG_HOME/track/config.yaml)")

	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("track %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

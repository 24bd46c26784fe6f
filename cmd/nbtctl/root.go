package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joshuapare/nbtkit/internal/logger"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	noMmap  bool
)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and edit NBT files",
	Long: `nbtctl inspects, edits, converts and compares NBT (Named Binary Tag)
files. Gzip, zlib, zstd and LZ4 containers are detected automatically; edits
keep the container the file was read with.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug, Writer: os.Stderr})
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noMmap, "no-mmap", false, "Read files instead of mapping them")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadOptions returns the file options shared by every command.
func loadOptions() nbtfile.Options {
	opts := nbtfile.DefaultOptions()
	opts.NoMmap = noMmap
	return opts
}

// loadFile opens an NBT file with the global options.
func loadFile(path string) (*nbtfile.File, error) {
	printVerbose("Opening file: %s\n", path)
	f, err := nbtfile.Load(path, loadOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// useColor reports whether output may be colored.
func useColor() bool {
	return !noColor && !jsonOut && !color.NoColor
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

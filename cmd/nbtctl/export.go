package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportPath   string
	exportTypes  bool
	exportIndent int
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "snbt", "Output format ("+formatList()+")")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&exportPath, "path", "", "Export only the tag at this path")
	cmd.Flags().BoolVar(&exportTypes, "types", false, "Include type information (json, yaml)")
	cmd.Flags().IntVar(&exportIndent, "indent", printer.DefaultIndentSize, "Indent width (0 = compact json)")
	rootCmd.AddCommand(cmd)
}

func formatList() string {
	names := make([]string, 0, len(printer.Formats()))
	for _, f := range printer.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a file to a text or CBOR format",
		Long: `The export command renders an NBT file (or the tag at --path) as a
text tree, SNBT, JSON, YAML or CBOR.

Example:
  nbtctl export level.dat
  nbtctl export level.dat --format json --types -o level.json
  nbtctl export level.dat --format yaml --path Data.Player
  nbtctl export level.dat --format cbor -o level.cbor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path := args[0]

	format, err := printer.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	var buf strings.Builder
	if exportOutput != "" {
		w = &buf
	}

	opts := printer.DefaultOptions()
	opts.Format = format
	opts.IndentSize = exportIndent
	opts.ShowTypes = exportTypes || format == printer.FormatText
	opts.MaxArrayItems = 0
	opts.Color = exportOutput == "" && format == printer.FormatText && useColor()

	p := printer.New(w, opts)
	if exportPath == "" {
		err = p.Print(f.Root)
	} else {
		err = p.PrintPath(f.Root, exportPath)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if exportOutput == "" {
		return nil
	}
	out := nbtfile.FileWriter{Path: exportOutput}
	if err := out.WriteFile([]byte(buf.String())); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	printVerbose("Exported %s to %s (%s)\n", path, exportOutput, format)
	return nil
}

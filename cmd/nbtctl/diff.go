package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var (
	diffPath string
	diffFull bool
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffPath, "path", "", "Compare only the tag at this path")
	cmd.Flags().BoolVar(&diffFull, "full", false, "Show unchanged lines too")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two files and show differences",
		Long: `The diff command compares the tag trees of two files, ignoring their
compression, and prints a line diff of their text trees.

Example:
  nbtctl diff before.dat after.dat
  nbtctl diff before.dat after.dat --path Data.Player
  nbtctl diff before.dat after.dat --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

// LineDiff is one changed (or, with --full, unchanged) line.
type LineDiff struct {
	Op   string `json:"op"` // "+", "-" or " "
	Line string `json:"line"`
}

// diffTrees returns a line diff of the text dumps of a and b.
func diffTrees(a, b nbt.Tag, full bool) ([]LineDiff, error) {
	textA, err := dumpText(a)
	if err != nil {
		return nil, err
	}
	textB, err := dumpText(b)
	if err != nil {
		return nil, err
	}

	dmp := diffpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(textA, textB)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var out []LineDiff
	for _, d := range diffs {
		var op string
		switch d.Type {
		case diffpatch.DiffInsert:
			op = "+"
		case diffpatch.DiffDelete:
			op = "-"
		case diffpatch.DiffEqual:
			if !full {
				continue
			}
			op = " "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, LineDiff{Op: op, Line: strings.TrimSuffix(line, "\n")})
		}
	}
	return out, nil
}

func dumpText(t nbt.Tag) (string, error) {
	var sb strings.Builder
	opts := printer.DefaultOptions()
	opts.MaxArrayItems = 0
	if err := printer.New(&sb, opts).Print(t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func diffRoot(path string) (nbt.Tag, string, error) {
	f, err := loadFile(path)
	if err != nil {
		return nil, "", err
	}
	t := f.Root
	if diffPath != "" {
		if t, err = nbt.Find(f.Root, diffPath); err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
	}
	digest, err := nbtfile.Digest(t)
	if err != nil {
		return nil, "", err
	}
	return t, digest, nil
}

func runDiff(args []string) error {
	a, digestA, err := diffRoot(args[0])
	if err != nil {
		return err
	}
	b, digestB, err := diffRoot(args[1])
	if err != nil {
		return err
	}

	equal := nbt.Equal(a, b)
	var lines []LineDiff
	if !equal {
		if lines, err = diffTrees(a, b, diffFull); err != nil {
			return fmt.Errorf("failed to diff: %w", err)
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file1":   args[0],
			"file2":   args[1],
			"equal":   equal,
			"digest1": digestA,
			"digest2": digestB,
			"lines":   lines,
		})
	}

	if equal {
		printInfo("Files are identical (%s)\n", digestA)
		return nil
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if !useColor() {
		add.DisableColor()
		del.DisableColor()
	}
	printInfo("--- %s\n+++ %s\n", args[0], args[1])
	for _, l := range lines {
		switch l.Op {
		case "+":
			printInfo("%s\n", add.Sprint("+ "+l.Line))
		case "-":
			printInfo("%s\n", del.Sprint("- "+l.Line))
		default:
			printInfo("  %s\n", l.Line)
		}
	}
	return nil
}

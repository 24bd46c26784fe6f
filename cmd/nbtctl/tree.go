package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/spf13/cobra"
)

var (
	treeDepth    int
	treeMaxItems int
	treeNoTypes  bool
	treeCompact  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().IntVar(&treeMaxItems, "max-items", printer.DefaultMaxArrayItems, "Maximum list/array items shown (0 = all)")
	cmd.Flags().BoolVar(&treeNoTypes, "no-types", false, "Hide type names")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical view of the tags in a file,
optionally starting below a path.

Example:
  nbtctl tree level.dat
  nbtctl tree level.dat Data.Player --depth 2
  nbtctl tree chunk.nbt "Level.Sections[0]" --max-items 4`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	path := args[0]
	var tagPath string
	if len(args) > 1 {
		tagPath = args[1]
	}

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.MaxArrayItems = treeMaxItems
	opts.ShowTypes = !treeNoTypes
	opts.Color = useColor()
	if treeCompact {
		opts.IndentSize = 1
	}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	p := printer.New(os.Stdout, opts)
	if tagPath == "" {
		err = p.Print(f.Root)
	} else {
		err = p.PrintPath(f.Root, tagPath)
	}
	if err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}

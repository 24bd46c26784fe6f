package main

import (
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Display file information",
		Long: `The info command displays the container, sizes, root tag and a
content digest of an NBT file, plus a count of tags by type.

Example:
  nbtctl info level.dat
  nbtctl info level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// tagStats summarizes a tree.
type tagStats struct {
	Tags     int            `json:"tags"`
	MaxDepth int            `json:"max_depth"`
	ByType   map[string]int `json:"by_type"`
}

func collectStats(root nbt.Tag) tagStats {
	st := tagStats{ByType: make(map[string]int)}
	var walk func(t nbt.Tag, depth int)
	walk = func(t nbt.Tag, depth int) {
		st.Tags++
		st.ByType[nbt.TypeName(t)]++
		st.MaxDepth = max(st.MaxDepth, depth)
		switch v := t.(type) {
		case *nbt.List:
			for _, it := range v.Items() {
				walk(it, depth+1)
			}
		case *nbt.Compound:
			for _, e := range v.Entries() {
				walk(e.Value, depth+1)
			}
		}
	}
	walk(root, 0)
	return st
}

func runInfo(args []string) error {
	path := args[0]

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	digest, err := nbtfile.Digest(f.Root)
	if err != nil {
		return fmt.Errorf("failed to digest: %w", err)
	}
	st := collectStats(f.Root)

	if jsonOut {
		result := map[string]any{
			"file":        path,
			"compression": f.Compression.String(),
			"size":        f.Size,
			"raw_size":    f.RawSize,
			"root_type":   nbt.TypeName(f.Root),
			"root_name":   f.Root.Name(),
			"digest":      digest,
			"stats":       st,
		}
		return printJSON(result)
	}

	printInfo("\nFile: %s\n", path)
	printInfo("  Compression: %s\n", f.Compression)
	printInfo("  Size:        %d bytes\n", f.Size)
	printInfo("  Raw size:    %d bytes\n", f.RawSize)
	printInfo("  Root:        %s %q\n", nbt.TypeName(f.Root), f.Root.Name())
	printInfo("  Digest:      %s\n", digest)
	printInfo("\nTags: %d (max depth %d)\n", st.Tags, st.MaxDepth)
	for id := nbt.TagByte; id <= nbt.TagIntArray; id++ {
		if n := st.ByType[id.String()]; n > 0 {
			printInfo("  %-10s %d\n", id, n)
		}
	}
	return nil
}

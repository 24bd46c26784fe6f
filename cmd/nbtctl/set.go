package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	setType        string
	setBackup      bool
	setCompression string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "", "Create the tag with this type if it doesn't exist (byte, short, int, long, float, double, byteArray, string, intArray, compound)")
	cmd.Flags().BoolVar(&setBackup, "backup", false, "Create backup")
	cmd.Flags().StringVar(&setCompression, "compression", "", "Rewrite with this compression (default: keep)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a tag value",
		Long: `The set command assigns a value to the tag at a path and saves the
file. Numbers follow the tag's overflow rules ("300" stored in a byte reads
back as 44); hex (0x..) and octal (0..) integers are accepted. Arrays take a
comma-separated list.

Example:
  nbtctl set level.dat Data.LevelName "New World"
  nbtctl set level.dat Data.Player.XpLevel 30
  nbtctl set level.dat Data.Flags 1,2,3
  nbtctl set level.dat Data.Custom 7 --type int --backup`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

// parseArray splits "1,2,3" (optionally bracketed) into integers.
func parseArray(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// assign stores the textual value in t.
func assign(t nbt.Tag, value string) error {
	switch v := t.(type) {
	case *nbt.ByteArray:
		vals, err := parseArray(value)
		if err != nil {
			return err
		}
		return v.SetValue(vals)
	case *nbt.IntArray:
		vals, err := parseArray(value)
		if err != nil {
			return err
		}
		return v.SetValue(vals)
	case *nbt.String:
		return v.SetValue(value)
	case *nbt.Byte:
		return v.SetValue(value)
	case *nbt.Short:
		return v.SetValue(value)
	case *nbt.Int:
		return v.SetValue(value)
	case *nbt.Long:
		return v.SetValue(value)
	case *nbt.Float:
		return v.SetValue(value)
	case *nbt.Double:
		return v.SetValue(value)
	case *nbt.Compound:
		if value != "" && value != "{}" {
			return fmt.Errorf("compound values cannot be set from text: %w", types.ErrUnsupported)
		}
		return nil
	default:
		return fmt.Errorf("cannot set %s from text: %w", nbt.TypeName(t), types.ErrUnsupported)
	}
}

// assignElement assigns value to t, storing it back into its parent
// array when path ends in an index into a ByteArray or IntArray.
func assignElement(root nbt.Tag, tagPath string, t nbt.Tag, value string) error {
	if err := assign(t, value); err != nil {
		return err
	}
	segs, err := nbt.ParsePath(tagPath)
	if err != nil || len(segs) == 0 {
		return err
	}
	last := segs[len(segs)-1]
	if !last.IsIndex {
		return nil
	}
	parent := root
	if len(segs) > 1 {
		if parent, err = nbt.Find(root, nbt.FormatPath(segs[:len(segs)-1])); err != nil {
			return err
		}
	}
	switch arr := parent.(type) {
	case *nbt.ByteArray:
		return arr.Set(last.Index, t.(*nbt.Byte).Value())
	case *nbt.IntArray:
		return arr.Set(last.Index, t.(*nbt.Int).Value())
	}
	return nil
}

// create adds a new tag of setType at tagPath, whose parent must be a compound.
func create(root nbt.Tag, tagPath string) (nbt.Tag, error) {
	typ, err := types.ParseTagType(setType)
	if err != nil {
		return nil, err
	}
	segs, err := nbt.ParsePath(tagPath)
	if err != nil {
		return nil, err
	}
	last := segs[len(segs)-1]
	if last.IsIndex {
		return nil, fmt.Errorf("cannot create list element %s: %w", tagPath, types.ErrUnsupported)
	}

	parent := root
	if len(segs) > 1 {
		if parent, err = nbt.Find(root, nbt.FormatPath(segs[:len(segs)-1])); err != nil {
			return nil, err
		}
	}
	c, ok := parent.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("parent of %s is a %s, not a compound: %w",
			tagPath, nbt.TypeName(parent), types.ErrInvalidValue)
	}

	t, err := nbt.New(typ, last.Key)
	if err != nil {
		return nil, err
	}
	c.Put(last.Key, t)
	return t, nil
}

func runSet(args []string) error {
	path := args[0]
	tagPath := args[1]
	value := args[2]

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	t, err := nbt.Find(f.Root, tagPath)
	created := false
	if errors.Is(err, types.ErrNotFound) && setType != "" {
		printVerbose("Creating %s tag: %s\n", setType, tagPath)
		t, err = create(f.Root, tagPath)
		created = true
	}
	if err != nil {
		return fmt.Errorf("failed to set tag: %w", err)
	}

	// Array elements come back detached; write them through the array.
	if err := assignElement(f.Root, tagPath, t, value); err != nil {
		return fmt.Errorf("failed to set tag: %w", err)
	}

	opts := loadOptions()
	opts.Compression = f.Compression
	if setCompression != "" {
		if opts.Compression, err = nbtfile.ParseCompression(setCompression); err != nil {
			return err
		}
	}

	if setBackup {
		if err := backup(path); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}
	if err := nbtfile.Save(path, f.Root, opts); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	if jsonOut {
		result := map[string]any{
			"file":    path,
			"path":    tagPath,
			"type":    nbt.TypeName(t),
			"value":   displayValue(t),
			"created": created,
			"success": true,
		}
		return printJSON(result)
	}

	printInfo("\nSetting tag in %s:\n", path)
	printInfo("  Path:  %s\n", tagPath)
	printInfo("  Type:  %s\n", nbt.TypeName(t))
	printInfo("  Value: %s\n", displayValue(t))
	printInfo("\n✓ Tag set successfully\n")
	if setBackup {
		printInfo("Backup created: %s.bak\n", path)
	}
	return nil
}

// backup copies path to path.bak.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w := nbtfile.FileWriter{Path: path + ".bak"}
	return w.WriteFile(data)
}

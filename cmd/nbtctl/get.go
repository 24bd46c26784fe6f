package main

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/spf13/cobra"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "show-type", false, "Show the tag type")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a tag value",
		Long: `The get command prints the value of the tag at a path. Scalars and
strings print as plain text; arrays, lists and compounds print as SNBT.

Paths separate compound keys with '.' and index lists and arrays with
[n]. Keys containing separators are double-quoted.

Example:
  nbtctl get level.dat Data.LevelName
  nbtctl get level.dat 'Data.Player.Pos[1]' --show-type
  nbtctl get level.dat '"weird.key"' --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

// displayValue renders t for the get command.
func displayValue(t nbt.Tag) string {
	switch v := t.(type) {
	case *nbt.String:
		return v.Value()
	case nbt.Number:
		return v.String()
	default:
		return printer.SNBT(t)
	}
}

func runGet(args []string) error {
	path := args[0]
	tagPath := args[1]

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	t, err := nbt.Find(f.Root, tagPath)
	if err != nil {
		return fmt.Errorf("failed to get tag: %w", err)
	}

	if jsonOut {
		value, err := printer.MarshalJSON(t)
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		result := map[string]any{
			"file":  path,
			"path":  tagPath,
			"type":  nbt.TypeName(t),
			"value": json.RawMessage(value),
		}
		return printJSON(result)
	}

	if getShowType {
		printInfo("%s ", nbt.TypeName(t))
	}
	printInfo("%s\n", displayValue(t))
	return nil
}

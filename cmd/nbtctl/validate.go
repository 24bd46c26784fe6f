package main

import (
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/spf13/cobra"
)

var validateLimits string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "default", "Limits preset to use (default, strict, relaxed)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate file structure and limits",
		Long: `The validate command decodes a file under a limits preset and checks
that re-encoding reproduces the original payload size.

Limits presets:
  default - Nesting depth 512, arrays up to 2^31-1 elements
  strict  - Nesting depth 64, arrays up to 2^20 elements
  relaxed - Nesting depth 4096

Example:
  nbtctl validate level.dat
  nbtctl validate level.dat --limits strict
  nbtctl validate level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func limitsPreset(name string) (types.Limits, error) {
	switch name {
	case "default":
		return types.DefaultLimits(), nil
	case "strict":
		return types.StrictLimits(), nil
	case "relaxed":
		return types.RelaxedLimits(), nil
	default:
		return types.Limits{}, fmt.Errorf("unknown limits preset: %s (must be default, strict, or relaxed)", name)
	}
}

func runValidate(args []string) error {
	path := args[0]

	printVerbose("Validating file: %s\n", path)

	limits, err := limitsPreset(validateLimits)
	if err != nil {
		return err
	}

	opts := loadOptions()
	opts.Limits = limits
	f, err := nbtfile.Load(path, opts)

	canonical := false
	if err == nil {
		var raw []byte
		if raw, err = nbt.Encode(f.Root); err == nil {
			canonical = len(raw) == f.RawSize
		}
	}

	if jsonOut {
		result := map[string]any{
			"file":   path,
			"limits": validateLimits,
			"valid":  err == nil,
		}
		if err != nil {
			result["error"] = err.Error()
		} else {
			result["canonical"] = canonical
		}
		return printJSON(result)
	}

	printInfo("\nValidating %s...\n\n", path)
	printInfo("Limits (%s):\n", validateLimits)
	if err != nil {
		printInfo("  ✗ Decoding failed: %v\n", err)
		printInfo("\nResult: ✗ INVALID\n")
		return err
	}
	printInfo("  ✓ Structure decoded (%s, %d bytes)\n", f.Compression, f.RawSize)
	if canonical {
		printInfo("  ✓ Re-encoding reproduces the payload size\n")
	} else {
		printInfo("  ! Re-encoding changes the payload size (duplicate keys or trailing data)\n")
	}
	printInfo("\nResult: ✓ VALID\n")
	return nil
}

// Package printer renders NBT trees as text, SNBT, JSON, YAML or CBOR.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxArrayItems = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, optionally colored tree.
	FormatText Format = "text"

	// FormatSNBT outputs stringified NBT ({key:1b,list:[I;1,2]}).
	FormatSNBT Format = "snbt"

	// FormatJSON outputs JSON with compound keys in insertion order.
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML document.
	FormatYAML Format = "yaml"

	// FormatCBOR outputs deterministic CBOR (binary).
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatSNBT, FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", &types.Error{
		Kind: types.ErrKindUnsupported,
		Msg:  fmt.Sprintf("printer: unknown format %q", s),
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text, json and
	// yaml). Zero produces compact JSON.
	// Default: 2
	IndentSize int

	// MaxDepth limits how many container levels the text tree expands
	// (0 = unlimited). Other formats always emit the full tree.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxArrayItems limits how many array and list elements the text tree
	// shows before summarizing the rest. Set to 0 for no limit.
	// Default: 16
	MaxArrayItems int

	// Color enables ANSI colors in the text tree.
	// Default: false
	Color bool

	// ShowTypes includes type names: as a column in text, as
	// {"type","value"} envelopes in JSON, and as line comments in YAML.
	// Default: true
	ShowTypes bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxArrayItems: DefaultMaxArrayItems,
		Color:         false,
		ShowTypes:     true,
	}
}

// Printer handles formatted output of NBT trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(root)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// Print renders t in the configured format.
func (p *Printer) Print(t nbt.Tag) error {
	if t == nil {
		return fmt.Errorf("printer: %w", types.ErrInvalidValue)
	}

	switch p.opts.Format {
	case FormatSNBT:
		_, err := fmt.Fprintln(p.writer, SNBT(t))
		return err
	case FormatJSON:
		return p.printJSON(t)
	case FormatYAML:
		return p.printYAML(t)
	case FormatCBOR:
		return p.printCBOR(t)
	case FormatText:
		return p.printText(t)
	default:
		return p.printText(t)
	}
}

// PrintPath resolves path below root (see nbt.Find) and prints the result.
//
// Example:
//
//	p.PrintPath(root, "Level.Sections[0]")
func (p *Printer) PrintPath(root nbt.Tag, path string) error {
	t, err := nbt.Find(root, path)
	if err != nil {
		return fmt.Errorf("find %q: %w", path, err)
	}
	return p.Print(t)
}

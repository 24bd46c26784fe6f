package nbtfile

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"

	"github.com/joshuapare/nbtkit/internal/logger"
	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Options controls loading and saving.
type Options struct {
	// Compression is the container used by Save, Write and Encode.
	// Load, Read and Decode always detect the container from the data.
	// Default: CompressionGzip
	Compression Compression

	// Level is the compression level passed to the codec. 0 selects the
	// codec's default; the valid range depends on the codec (gzip and
	// zlib -2..9, zstd 1..22, lz4 0..9).
	// Default: 0
	Level int

	// Limits bounds the inflated size, nesting depth and array lengths
	// while decoding.
	// Zero fields mean unlimited.
	// Default: types.DefaultLimits()
	Limits types.Limits

	// Logger receives debug records about detection, sizes and targets.
	// If nil, the package-wide logger is used (discards unless enabled).
	Logger *slog.Logger

	// NoMmap reads files with a plain read instead of memory-mapping them.
	// Default: false
	NoMmap bool
}

// DefaultOptions returns gzip compression with default decode limits.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionGzip,
		Limits:      types.DefaultLimits(),
	}
}

// File is a decoded NBT document together with how it was stored.
type File struct {
	// Root is the top-level tag, normally a named Compound.
	Root nbt.Tag

	// Compression is the container the data was found in.
	Compression Compression

	// Size is the stored (possibly compressed) size in bytes.
	Size int

	// RawSize is the size of the bare NBT stream in bytes.
	RawSize int
}

// Load reads, decompresses and decodes the file at path.
//
// Example:
//
//	f, err := nbtfile.Load("level.dat", nbtfile.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := f.Root.(*nbt.Compound).GetCompound("Data")
func Load(path string, opts Options) (*File, error) {
	log := logger.Or(opts.Logger)

	var (
		data    []byte
		cleanup = func() error { return nil }
		err     error
	)
	if opts.NoMmap {
		data, err = os.ReadFile(path)
	} else {
		data, cleanup, err = mmfile.Map(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	log.Debug("nbtfile: loaded", "path", path, "bytes", len(data), "mmap", !opts.NoMmap)

	f, err := Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Read decodes a document from r.
func Read(r io.Reader, opts Options) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Decode(data, opts)
}

// Decode detects the container of data, unwraps it and decodes one root
// tag. The result never aliases data.
func Decode(data []byte, opts Options) (*File, error) {
	log := logger.Or(opts.Logger)

	c := Detect(data)
	raw, err := decompress(data, c, opts.Limits.MaxDecompressed)
	if err != nil {
		return nil, err
	}
	log.Debug("nbtfile: decompressed", "compression", c.String(), "stored", len(data), "raw", len(raw))

	root, err := nbt.DecodeWithOptions(raw, nbt.DecodeOptions{Limits: opts.Limits})
	if err != nil {
		return nil, err
	}
	return &File{Root: root, Compression: c, Size: len(data), RawSize: len(raw)}, nil
}

// Encode serializes root and wraps it in opts.Compression.
func Encode(root nbt.Tag, opts Options) ([]byte, error) {
	raw, err := nbt.Encode(root)
	if err != nil {
		return nil, err
	}
	out, err := compress(raw, opts.Compression, opts.Level)
	if err != nil {
		return nil, err
	}
	logger.Or(opts.Logger).Debug("nbtfile: encoded",
		"compression", opts.Compression.String(), "raw", len(raw), "stored", len(out))
	return out, nil
}

// Write encodes root and writes it to w.
func Write(w io.Writer, root nbt.Tag, opts Options) error {
	b, err := Encode(root, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save encodes root and replaces the file at path atomically: the data is
// written to a temporary file in the same directory, synced, and renamed
// over path.
func Save(path string, root nbt.Tag, opts Options) error {
	b, err := Encode(root, opts)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	fw := &FileWriter{Path: path}
	if err := fw.WriteFile(b); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logger.Or(opts.Logger).Debug("nbtfile: saved", "path", path, "bytes", len(b))
	return nil
}

// Digest returns the hex BLAKE3 hash of root's bare encoding. Trees that
// encode identically share a digest regardless of how they are compressed.
func Digest(root nbt.Tag) (string, error) {
	raw, err := nbt.Encode(root)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether two encoded documents hold the same bare stream,
// whatever their compression. Each side may inflate to at most
// types.MaxDecompressedDefault bytes.
func Equal(a, b []byte) (bool, error) {
	ra, err := decompress(a, Detect(a), types.MaxDecompressedDefault)
	if err != nil {
		return false, err
	}
	rb, err := decompress(b, Detect(b), types.MaxDecompressedDefault)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ra, rb), nil
}

package nbtfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Compression identifies the container an NBT payload is wrapped in.
type Compression uint8

const (
	// CompressionNone is a bare NBT stream.
	CompressionNone Compression = iota

	// CompressionGzip is the usual wrapping of level.dat and player files.
	CompressionGzip

	// CompressionZlib is used for chunk payloads inside region files.
	CompressionZlib

	// CompressionZstd trades a little CPU for noticeably smaller files.
	CompressionZstd

	// CompressionLZ4 is LZ4 frame format; the fastest to decode.
	CompressionLZ4
)

// String returns the lowercase name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// ParseCompression parses a compression from its string representation.
// "gz" and "zst" are accepted as aliases.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "raw", "":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zlib":
		return CompressionZlib, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, &types.Error{
			Kind: types.ErrKindUnsupported,
			Msg:  fmt.Sprintf("nbtfile: unknown compression %q", name),
		}
	}
}

// Detect identifies the container from its leading bytes. Anything that
// is not a recognized magic is treated as a bare NBT stream. A bare
// stream cannot be mistaken for zlib: 0x78 is not a valid tag type.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, format.GzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, format.ZstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, format.LZ4Magic):
		return CompressionLZ4
	case len(data) >= 2 && data[0] == format.ZlibCMF && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		return CompressionZlib
	default:
		return CompressionNone
	}
}

// zstdDecoder is shared; zstd.Decoder is safe for concurrent use.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("nbtfile: zstd decoder initialization failed: " + err.Error())
	}
}

// lz4Levels maps levels 0..9 onto the library's level constants.
var lz4Levels = []lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// compress wraps data in the container c. Level 0 selects the codec's
// default level.
func compress(data []byte, c Compression, level int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionGzip:
		var buf bytes.Buffer
		if level == 0 {
			level = gzip.DefaultCompression
		}
		w, err := gzip.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("gzip compress: %w", err)
		}
		return finish(&buf, w, data, "gzip")

	case CompressionZlib:
		var buf bytes.Buffer
		if level == 0 {
			level = zlib.DefaultCompression
		}
		w, err := zlib.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("zlib compress: %w", err)
		}
		return finish(&buf, w, data, "zlib")

	case CompressionZstd:
		encLevel := zstd.SpeedDefault
		if level != 0 {
			encLevel = zstd.EncoderLevelFromZstd(level)
		}
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(encLevel))
		if err != nil {
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil

	case CompressionLZ4:
		if level < 0 || level >= len(lz4Levels) {
			return nil, fmt.Errorf("lz4 compress: level %d out of range [0,%d]", level, len(lz4Levels)-1)
		}
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if err := w.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return finish(&buf, w, data, "lz4")

	default:
		return nil, fmt.Errorf("nbtfile: %w: compression %d", types.ErrUnsupported, c)
	}
}

func finish(buf *bytes.Buffer, w io.WriteCloser, data []byte, name string) ([]byte, error) {
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%s compress: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s compress: %w", name, err)
	}
	return buf.Bytes(), nil
}

// decompress unwraps data from the container c. A positive limit bounds the
// inflated size; exceeding it is reported as corruption.
func decompress(data []byte, c Compression, limit int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip decompress: %w", err)
		}
		defer r.Close()
		return readAll(r, "gzip", limit)

	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zlib decompress: %w", err)
		}
		defer r.Close()
		return readAll(r, "zlib", limit)

	case CompressionZstd:
		dec := zstdDecoder
		if limit > 0 {
			d, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderMaxMemory(uint64(limit)))
			if err != nil {
				return nil, fmt.Errorf("zstd decompress: %w", err)
			}
			defer d.Close()
			dec = d
		}
		out, err := dec.DecodeAll(data, nil)
		switch {
		case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
			return nil, sizeLimitError("zstd", limit)
		case err != nil:
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, nil

	case CompressionLZ4:
		return readAll(lz4.NewReader(bytes.NewReader(data)), "lz4", limit)

	default:
		return nil, fmt.Errorf("nbtfile: %w: compression %d", types.ErrUnsupported, c)
	}
}

func readAll(r io.Reader, name string, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", name, err)
	}
	if limit > 0 && len(out) > limit {
		return nil, sizeLimitError(name, limit)
	}
	return out, nil
}

func sizeLimitError(name string, limit int) error {
	return &types.Error{
		Kind: types.ErrKindCorrupt,
		Msg:  fmt.Sprintf("%s decompress: output exceeds limit of %d bytes", name, limit),
	}
}

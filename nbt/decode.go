package nbt

import (
	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// Limits bounds nesting depth and element counts.
	// Zero fields mean unlimited.
	Limits types.Limits
}

// DefaultDecodeOptions returns options using types.DefaultLimits.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Limits: types.DefaultLimits()}
}

// Decoder reads tags sequentially from a byte slice.
//
// Decoded tags never alias the input: every payload is copied, so the
// buffer may be released (or unmapped) once decoding returns.
type Decoder struct {
	r    *buf.Reader
	opts DecodeOptions
}

// NewDecoder returns a Decoder over data.
func NewDecoder(data []byte, opts DecodeOptions) *Decoder {
	return &Decoder{r: buf.NewReader(data), opts: opts}
}

// Decode parses one complete tag (type id, name and payload) from data
// with the default limits. Trailing bytes are ignored.
func Decode(data []byte) (Tag, error) {
	return NewDecoder(data, DefaultDecodeOptions()).Decode()
}

// DecodeWithOptions is Decode with explicit options.
func DecodeWithOptions(data []byte, opts DecodeOptions) (Tag, error) {
	return NewDecoder(data, opts).Decode()
}

// DecodeAs parses a bare payload of type t, as found inside a list. The
// result is unnamed. Decoding as TagEnd consumes nothing.
func DecodeAs(data []byte, t Type) (Tag, error) {
	return NewDecoder(data, DefaultDecodeOptions()).DecodeAs(t)
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.r.Offset() }

// More reports whether unread input remains.
func (d *Decoder) More() bool { return d.r.Remaining() > 0 }

// Decode reads the next complete tag. An End type id yields *End.
//
// Errors are returned as produced; after a failure the cursor position is
// unspecified and the Decoder should be discarded.
func (d *Decoder) Decode() (Tag, error) {
	return d.readTag(0)
}

// DecodeAs reads a bare payload of type t.
func (d *Decoder) DecodeAs(t Type) (Tag, error) {
	if !t.Valid() {
		return nil, &UnknownTypeError{ID: int8(t), Offset: d.r.Offset()}
	}
	return d.readPayload(t, "", 0)
}

func (d *Decoder) readTag(depth int) (Tag, error) {
	off := d.r.Offset()
	id, err := d.r.ReadInt8()
	if err != nil {
		return nil, err
	}
	t := Type(id)
	if t == TagEnd {
		return &End{}, nil
	}
	if !t.Valid() {
		return nil, &UnknownTypeError{ID: id, Offset: off}
	}

	n, err := d.r.ReadUint16()
	if err != nil {
		return nil, err
	}
	raw, err := d.r.Read(int(n))
	if err != nil {
		return nil, err
	}
	return d.readPayload(t, mutf8.Decode(raw), depth)
}

func (d *Decoder) readPayload(t Type, name string, depth int) (Tag, error) {
	nm := named{name: name}
	switch t {
	case TagEnd:
		return &End{}, nil

	case TagByte:
		tag := &Byte{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagShort:
		tag := &Short{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagInt:
		tag := &Int{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagLong:
		tag := &Long{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagFloat:
		tag := &Float{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagDouble:
		tag := &Double{named: nm}
		return d.fixed(tag, tag.raw[:])

	case TagByteArray:
		n, err := d.readCount(1)
		if err != nil {
			return nil, err
		}
		data, err := d.r.ReadCopy(n)
		if err != nil {
			return nil, err
		}
		return &ByteArray{named: nm, data: data}, nil

	case TagString:
		n, err := d.r.ReadUint16()
		if err != nil {
			return nil, err
		}
		raw, err := d.r.ReadCopy(int(n))
		if err != nil {
			return nil, err
		}
		return &String{named: nm, raw: raw}, nil

	case TagList:
		return d.readList(nm, depth)

	case TagCompound:
		return d.readCompound(nm, depth)

	case TagIntArray:
		n, err := d.readCount(format.IntArrayElemSize)
		if err != nil {
			return nil, err
		}
		data, err := d.r.ReadCopy(n * format.IntArrayElemSize)
		if err != nil {
			return nil, err
		}
		return &IntArray{named: nm, data: data}, nil

	default:
		return nil, &UnknownTypeError{ID: int8(t), Offset: d.r.Offset()}
	}
}

// fixed fills a scalar payload.
func (d *Decoder) fixed(t Tag, dst []byte) (Tag, error) {
	b, err := d.r.Read(len(dst))
	if err != nil {
		return nil, err
	}
	copy(dst, b)
	return t, nil
}

// readCount reads an int32 element count and checks it against the limits
// and the remaining input, so hostile counts never drive allocation.
func (d *Decoder) readCount(minElemSize int) (int, error) {
	n32, err := d.r.ReadInt32()
	if err != nil {
		return 0, err
	}
	n := int(n32)
	if limit := d.opts.Limits.MaxArrayLen; limit > 0 && n > limit {
		return 0, corruptError("element count %d exceeds limit %d", n, limit)
	}
	if err := d.r.CheckCount(n, minElemSize); err != nil {
		return 0, err
	}
	return n, nil
}

func (d *Decoder) enter(depth int) error {
	if limit := d.opts.Limits.MaxDepth; limit > 0 && depth >= limit {
		return corruptError("nesting depth exceeds limit %d", limit)
	}
	return nil
}

func (d *Decoder) readList(nm named, depth int) (Tag, error) {
	if err := d.enter(depth); err != nil {
		return nil, err
	}
	off := d.r.Offset()
	id, err := d.r.ReadInt8()
	if err != nil {
		return nil, err
	}
	elem := Type(id)
	if !elem.Valid() {
		return nil, &UnknownTypeError{ID: id, Offset: off}
	}
	n, err := d.readCount(elem.MinPayload())
	if err != nil {
		return nil, err
	}
	if elem == TagEnd && n > 0 {
		return nil, corruptError("list of %s with %d elements at offset %d", elem, n, off)
	}

	l := &List{named: nm, elem: elem}
	if n > 0 {
		l.items = make([]Tag, 0, n)
	}
	for i := 0; i < n; i++ {
		item, err := d.readPayload(elem, "", depth+1)
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, item)
	}
	return l, nil
}

func (d *Decoder) readCompound(nm named, depth int) (Tag, error) {
	if err := d.enter(depth); err != nil {
		return nil, err
	}
	c := &Compound{named: nm, m: make(map[string]Tag)}
	for {
		child, err := d.readTag(depth + 1)
		if err != nil {
			return nil, err
		}
		if child.Type() == TagEnd {
			return c, nil
		}
		c.Put(child.Name(), child)
	}
}

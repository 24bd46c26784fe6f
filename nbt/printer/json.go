package printer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// printJSON writes t's value as JSON. Compound keys keep their insertion
// order, which rules out marshaling through a Go map. Non-finite floats
// are written as the strings "NaN", "+Inf" and "-Inf".
func (p *Printer) printJSON(t nbt.Tag) error {
	var buf bytes.Buffer
	if err := p.appendJSON(&buf, t); err != nil {
		return err
	}

	out := buf.Bytes()
	if p.opts.IndentSize > 0 {
		var indented bytes.Buffer
		if err := json.Indent(&indented, out, "", strings.Repeat(" ", p.opts.IndentSize)); err != nil {
			return err
		}
		out = indented.Bytes()
	}
	out = append(out, '\n')
	_, err := p.writer.Write(out)
	return err
}

// MarshalJSON returns t's value as compact JSON without type envelopes.
func MarshalJSON(t nbt.Tag) ([]byte, error) {
	p := &Printer{opts: Options{ShowTypes: false}}
	var buf bytes.Buffer
	if err := p.appendJSON(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Printer) appendJSON(buf *bytes.Buffer, t nbt.Tag) error {
	if !p.opts.ShowTypes {
		return p.appendJSONValue(buf, t)
	}
	buf.WriteString(`{"type":`)
	writeJSONString(buf, nbt.TypeName(t))
	if l, ok := t.(*nbt.List); ok {
		buf.WriteString(`,"elem":`)
		writeJSONString(buf, l.ElemType().String())
	}
	buf.WriteString(`,"value":`)
	if err := p.appendJSONValue(buf, t); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (p *Printer) appendJSONValue(buf *bytes.Buffer, t nbt.Tag) error {
	switch v := t.(type) {
	case *nbt.End:
		buf.WriteString("null")
	case *nbt.Byte, *nbt.Short, *nbt.Int, *nbt.Long:
		buf.WriteString(v.String())
	case *nbt.Float:
		writeJSONFloat(buf, float64(v.Value()), 32)
	case *nbt.Double:
		writeJSONFloat(buf, v.Value(), 64)
	case *nbt.String:
		writeJSONString(buf, v.Value())
	case *nbt.ByteArray:
		buf.WriteByte('[')
		for i, b := range v.Values() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(int(b)))
		}
		buf.WriteByte(']')
	case *nbt.IntArray:
		buf.WriteByte('[')
		for i, n := range v.Values() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(int(n)))
		}
		buf.WriteByte(']')
	case *nbt.List:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := p.appendJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *nbt.Compound:
		buf.WriteByte('{')
		for i, e := range v.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, e.Key)
			buf.WriteByte(':')
			if err := p.appendJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONFloat(buf *bytes.Buffer, f float64, bitSize int) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"+Inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-Inf"`)
	default:
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, bitSize))
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// Marshal of a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

package printer

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/joshuapare/nbtkit/nbt"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys and smallest integer and float encodings, so equal trees always
// produce identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("printer: CBOR encoder initialization failed: " + err.Error())
	}
}

func (p *Printer) printCBOR(t nbt.Tag) error {
	b, err := MarshalCBOR(t)
	if err != nil {
		return err
	}
	_, err = p.writer.Write(b)
	return err
}

// MarshalCBOR encodes t's value as deterministic CBOR. ByteArray becomes a
// byte string, IntArray and List become arrays, and Compound becomes a map
// with sorted keys.
func MarshalCBOR(t nbt.Tag) ([]byte, error) {
	return encMode.Marshal(Value(t))
}

// Value converts t into plain Go values: int8, int16, int32, int64,
// float32, float64, []byte, string, []int32, []any and map[string]any.
// End converts to nil.
func Value(t nbt.Tag) any {
	switch v := t.(type) {
	case *nbt.Byte:
		return v.Value()
	case *nbt.Short:
		return v.Value()
	case *nbt.Int:
		return v.Value()
	case *nbt.Long:
		return v.Value()
	case *nbt.Float:
		return v.Value()
	case *nbt.Double:
		return v.Value()
	case *nbt.ByteArray:
		return v.Bytes()
	case *nbt.String:
		return v.Value()
	case *nbt.IntArray:
		return v.Values()
	case *nbt.List:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Value(item)
		}
		return out
	case *nbt.Compound:
		out := make(map[string]any, v.Len())
		for _, e := range v.Entries() {
			out[e.Key] = Value(e.Value)
		}
		return out
	default:
		return nil
	}
}

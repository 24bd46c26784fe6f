package printer

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/nbtkit/nbt"
)

// printYAML writes t's value as a YAML document built from yaml.Node so
// compound keys keep their insertion order.
//
// With ShowTypes, each value is labelled with its type name in a comment.
// yaml.v3 only keeps a line comment next to its node for scalars and
// flow collections, so block collections carry the label elsewhere: on
// the key of a compound entry, or as a head comment when they are list
// items or the root.
func (p *Printer) printYAML(t nbt.Tag) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(max(p.opts.IndentSize, 2))
	n := p.yamlValue(t)
	p.labelItem(n, t)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

func yamlTypeLabel(t nbt.Tag) string {
	if l, ok := t.(*nbt.List); ok {
		return nbt.TypeName(t) + "<" + l.ElemType().String() + ">"
	}
	return nbt.TypeName(t)
}

func isBlock(n *yaml.Node) bool {
	return (n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode) && n.Style&yaml.FlowStyle == 0
}

// labelEntry labels the value of a compound entry.
func (p *Printer) labelEntry(key, val *yaml.Node, t nbt.Tag) {
	if !p.opts.ShowTypes {
		return
	}
	if isBlock(val) {
		key.LineComment = yamlTypeLabel(t)
	} else {
		val.LineComment = yamlTypeLabel(t)
	}
}

// labelItem labels a list element or the document root.
func (p *Printer) labelItem(n *yaml.Node, t nbt.Tag) {
	if !p.opts.ShowTypes {
		return
	}
	if isBlock(n) {
		n.HeadComment = yamlTypeLabel(t)
	} else {
		n.LineComment = yamlTypeLabel(t)
	}
}

func (p *Printer) yamlValue(t nbt.Tag) *yaml.Node {
	switch v := t.(type) {
	case *nbt.End:
		return scalar("!!null", "null")
	case *nbt.Byte, *nbt.Short, *nbt.Int, *nbt.Long:
		return scalar("!!int", v.String())
	case *nbt.Float:
		return scalar("!!float", yamlFloat(float64(v.Value()), 32))
	case *nbt.Double:
		return scalar("!!float", yamlFloat(v.Value(), 64))
	case *nbt.String:
		return scalar("!!str", v.Value())
	case *nbt.ByteArray:
		seq := flowSeq()
		for _, b := range v.Values() {
			seq.Content = append(seq.Content, scalar("!!int", strconv.Itoa(int(b))))
		}
		return seq
	case *nbt.IntArray:
		seq := flowSeq()
		for _, n := range v.Values() {
			seq.Content = append(seq.Content, scalar("!!int", strconv.Itoa(int(n))))
		}
		return seq
	case *nbt.List:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			n := p.yamlValue(item)
			p.labelItem(n, item)
			seq.Content = append(seq.Content, n)
		}
		if len(seq.Content) == 0 {
			seq.Style = yaml.FlowStyle
		}
		return seq
	case *nbt.Compound:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.Entries() {
			key, val := scalar("!!str", e.Key), p.yamlValue(e.Value)
			p.labelEntry(key, val, e.Value)
			m.Content = append(m.Content, key, val)
		}
		if len(m.Content) == 0 {
			m.Style = yaml.FlowStyle
		}
		return m
	default:
		return scalar("!!null", "null")
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func flowSeq() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
}

func yamlFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

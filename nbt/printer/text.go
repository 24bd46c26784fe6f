package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/joshuapare/nbtkit/nbt"
)

type palette struct {
	typ   func(a ...any) string
	name  func(a ...any) string
	num   func(a ...any) string
	str   func(a ...any) string
	punct func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		typ:   mk(color.FgBlue),
		name:  mk(color.FgYellow),
		num:   mk(color.FgCyan),
		str:   mk(color.FgGreen),
		punct: mk(color.Faint),
	}
}

// printText writes the tree one tag per line:
//
//	compound "Level" {2 entries}
//	  int "id" = 42
//	  list "tags" <string> [2 entries]
//	    string = "a"
func (p *Printer) printText(t nbt.Tag) error {
	var sb strings.Builder
	p.writeText(&sb, newPalette(p.opts.Color), t, true, 0)
	_, err := p.writer.Write([]byte(sb.String()))
	return err
}

func (p *Printer) writeText(sb *strings.Builder, pal palette, t nbt.Tag, named bool, depth int) {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	sb.WriteString(indent)

	if p.opts.ShowTypes {
		sb.WriteString(pal.typ(nbt.TypeName(t)))
		sb.WriteByte(' ')
	}
	if named {
		sb.WriteString(pal.name(strconv.Quote(t.Name())))
		sb.WriteByte(' ')
	}

	expand := p.opts.MaxDepth <= 0 || depth+1 < p.opts.MaxDepth

	switch v := t.(type) {
	case *nbt.End:
		sb.WriteString(pal.punct("end"))
		sb.WriteByte('\n')

	case *nbt.String:
		sb.WriteString(pal.punct("= "))
		sb.WriteString(pal.str(strconv.Quote(v.Value())))
		sb.WriteByte('\n')

	case nbt.Number:
		sb.WriteString(pal.punct("= "))
		sb.WriteString(pal.num(v.String()))
		sb.WriteByte('\n')

	case *nbt.ByteArray:
		vals := v.Values()
		items := make([]string, len(vals))
		for i, b := range vals {
			items[i] = strconv.Itoa(int(b))
		}
		p.writeArray(sb, pal, items)

	case *nbt.IntArray:
		vals := v.Values()
		items := make([]string, len(vals))
		for i, n := range vals {
			items[i] = strconv.Itoa(int(n))
		}
		p.writeArray(sb, pal, items)

	case *nbt.List:
		fmt.Fprintf(sb, "%s %s\n",
			pal.punct("<"+v.ElemType().String()+">"),
			pal.punct(fmt.Sprintf("[%d %s]", v.Len(), entries(v.Len()))))
		if !expand {
			return
		}
		items := v.Items()
		shown := p.limit(len(items))
		for _, item := range items[:shown] {
			p.writeText(sb, pal, item, false, depth+1)
		}
		if shown < len(items) {
			fmt.Fprintf(sb, "%s%s\n", strings.Repeat(" ", (depth+1)*p.opts.IndentSize),
				pal.punct(fmt.Sprintf("... %d more", len(items)-shown)))
		}

	case *nbt.Compound:
		sb.WriteString(pal.punct(fmt.Sprintf("{%d %s}", v.Len(), entries(v.Len()))))
		sb.WriteByte('\n')
		if !expand {
			return
		}
		for _, e := range v.Entries() {
			p.writeText(sb, pal, e.Value, true, depth+1)
		}
	}
}

func (p *Printer) writeArray(sb *strings.Builder, pal palette, items []string) {
	shown := p.limit(len(items))
	sb.WriteString(pal.punct("= ["))
	sb.WriteString(pal.num(strings.Join(items[:shown], " ")))
	if shown < len(items) {
		sb.WriteString(pal.punct(fmt.Sprintf(" ... %d more", len(items)-shown)))
	}
	sb.WriteString(pal.punct("]"))
	sb.WriteByte('\n')
}

func (p *Printer) limit(n int) int {
	if p.opts.MaxArrayItems > 0 && n > p.opts.MaxArrayItems {
		return p.opts.MaxArrayItems
	}
	return n
}

func entries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

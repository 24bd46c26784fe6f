package nbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Find resolves a path below root.
//
// Paths are dot-separated compound keys with optional bracketed indices
// into lists and arrays:
//
//	Level.Sections[2].Y
//	tags[1]
//	"key.with.dots".value
//
// Keys containing '.', '[' or '"' must be double-quoted; inside quotes a
// backslash escapes the next character. The empty path resolves to root.
// Indexing into a ByteArray or IntArray returns a detached Byte or Int
// holding the element.
func Find(root Tag, path string) (Tag, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := root
	for i, seg := range segs {
		next, err := step(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FormatPath(segs[:i+1]), err)
		}
		cur = next
	}
	return cur, nil
}

// PathSegment is one step of a parsed path: a compound key or an index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

// ParsePath splits a path into segments.
func ParsePath(path string) ([]PathSegment, error) {
	var segs []PathSegment
	p := pathParser{s: path}
	for !p.done() {
		switch p.peek() {
		case '[':
			idx, err := p.index()
			if err != nil {
				return nil, err
			}
			segs = append(segs, PathSegment{Index: idx, IsIndex: true})
		case '.':
			if len(segs) == 0 {
				return nil, p.errorf("path cannot start with '.'")
			}
			p.pos++
			if p.done() || p.peek() == '.' || p.peek() == '[' {
				return nil, p.errorf("empty key")
			}
			key, err := p.key()
			if err != nil {
				return nil, err
			}
			segs = append(segs, PathSegment{Key: key})
		default:
			if len(segs) > 0 {
				return nil, p.errorf("expected '.' or '['")
			}
			key, err := p.key()
			if err != nil {
				return nil, err
			}
			segs = append(segs, PathSegment{Key: key})
		}
	}
	return segs, nil
}

// FormatPath renders segments back into path syntax.
func FormatPath(segs []PathSegment) string {
	var sb strings.Builder
	for i, seg := range segs {
		if seg.IsIndex {
			fmt.Fprintf(&sb, "[%d]", seg.Index)
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		if seg.Key == "" || strings.ContainsAny(seg.Key, `.["\`) {
			sb.WriteString(strconv.Quote(seg.Key))
		} else {
			sb.WriteString(seg.Key)
		}
	}
	return sb.String()
}

func step(cur Tag, seg PathSegment) (Tag, error) {
	if !seg.IsIndex {
		c, ok := cur.(*Compound)
		if !ok {
			return nil, invalidValue("cannot look up key %q in %s", seg.Key, TypeName(cur))
		}
		t := c.Get(seg.Key)
		if t == nil {
			return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("nbt: key %q not found", seg.Key)}
		}
		return t, nil
	}

	switch v := cur.(type) {
	case *List:
		return v.Get(seg.Index)
	case *ByteArray:
		b, err := v.Get(seg.Index)
		if err != nil {
			return nil, err
		}
		return NewByte("", b), nil
	case *IntArray:
		n, err := v.Get(seg.Index)
		if err != nil {
			return nil, err
		}
		return NewInt("", n), nil
	default:
		return nil, invalidValue("cannot index into %s", TypeName(cur))
	}
}

type pathParser struct {
	s   string
	pos int
}

func (p *pathParser) done() bool { return p.pos >= len(p.s) }
func (p *pathParser) peek() byte { return p.s[p.pos] }

func (p *pathParser) errorf(format string, args ...any) error {
	return invalidValue("path %q at %d: %s", p.s, p.pos, fmt.Sprintf(format, args...))
}

func (p *pathParser) index() (int, error) {
	p.pos++ // '['
	end := strings.IndexByte(p.s[p.pos:], ']')
	if end < 0 {
		return 0, p.errorf("unterminated index")
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.s[p.pos : p.pos+end]))
	if err != nil {
		return 0, p.errorf("invalid index %q", p.s[p.pos:p.pos+end])
	}
	p.pos += end + 1
	return n, nil
}

func (p *pathParser) key() (string, error) {
	if p.peek() == '"' {
		return p.quoted()
	}
	start := p.pos
	for !p.done() && p.peek() != '.' && p.peek() != '[' {
		if p.peek() == '"' {
			return "", p.errorf("unexpected quote")
		}
		p.pos++
	}
	return p.s[start:p.pos], nil
}

func (p *pathParser) quoted() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for !p.done() {
		c := p.peek()
		p.pos++
		switch c {
		case '\\':
			if p.done() {
				return "", p.errorf("dangling escape")
			}
			sb.WriteByte(p.peek())
			p.pos++
		case '"':
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", p.errorf("unterminated quote")
}

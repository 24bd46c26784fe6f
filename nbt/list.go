package nbt

// List is an ordered sequence of unnamed tags sharing one element type.
//
// An empty list created with element type TagEnd is untyped: the first
// inserted tag fixes the type. Afterwards every insertion or replacement
// must match it, otherwise the call fails with a *ListTypeError and the
// list is left unchanged.
type List struct {
	named
	elem  Type
	items []Tag
}

// NewList returns an empty list with the given element type. Pass TagEnd
// for an untyped list.
func NewList(name string, elem Type) *List {
	return &List{named: named{name: name}, elem: elem}
}

// ListOf returns a list holding items. The element type is taken from the
// first item; an empty call yields an untyped list.
func ListOf(name string, items ...Tag) (*List, error) {
	l := NewList(name, TagEnd)
	if err := l.Add(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// Type implements Tag.
func (*List) Type() Type { return TagList }

// ElemType returns the element type, TagEnd when untyped.
func (l *List) ElemType() Type { return l.elem }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// Get returns element i.
func (l *List) Get(i int) (Tag, error) {
	if i < 0 || i >= len(l.items) {
		return nil, indexError(i, len(l.items))
	}
	return l.items[i], nil
}

// Set replaces element i. The tag's name is cleared.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.items) {
		return indexError(i, len(l.items))
	}
	elem, err := l.accept(l.elem, t)
	if err != nil {
		return err
	}
	l.elem = elem
	t.SetName("")
	l.items[i] = t
	return nil
}

// Add appends tags. All of them are checked before any is inserted, so a
// failed call leaves the list unchanged. Names are cleared.
func (l *List) Add(tags ...Tag) error {
	elem := l.elem
	for _, t := range tags {
		var err error
		if elem, err = l.accept(elem, t); err != nil {
			return err
		}
	}
	l.elem = elem
	for _, t := range tags {
		t.SetName("")
		l.items = append(l.items, t)
	}
	return nil
}

// accept returns the element type after inserting t into a list whose
// current element type is elem.
func (l *List) accept(elem Type, t Tag) (Type, error) {
	if isNil(t) {
		return elem, invalidValue("cannot add nil to %s", TagList)
	}
	if t.Type() == TagEnd {
		return elem, invalidValue("%s cannot be a list element", TagEnd)
	}
	if elem == TagEnd {
		return t.Type(), nil
	}
	if t.Type() != elem {
		return elem, &ListTypeError{Got: t.Type(), Want: elem}
	}
	return elem, nil
}

// Remove deletes element i, shifting later elements down.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return indexError(i, len(l.items))
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Clear removes every element. The element type is kept.
func (l *List) Clear() {
	l.items = nil
}

// Items returns a snapshot of the elements. The slice is a copy; the tags
// are shared with the list.
func (l *List) Items() []Tag {
	return append([]Tag(nil), l.items...)
}

func (l *List) String() string { return describe(TagList, len(l.items)) }

// Clone implements Tag.
func (l *List) Clone() Tag {
	c := &List{named: l.named, elem: l.elem}
	if len(l.items) > 0 {
		c.items = make([]Tag, len(l.items))
		for i, t := range l.items {
			c.items[i] = t.Clone()
		}
	}
	return c
}

package nbt

// Compound maps names to tags. Keys are unique; iteration and encoding
// follow insertion order, while equality ignores order.
type Compound struct {
	named
	keys []string
	m    map[string]Tag
}

// Entry is one key/value pair of a Compound.
type Entry struct {
	Key   string
	Value Tag
}

// NewCompound returns an empty compound.
func NewCompound(name string) *Compound {
	return &Compound{named: named{name: name}, m: make(map[string]Tag)}
}

// Type implements Tag.
func (*Compound) Type() Type { return TagCompound }

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// Get returns the tag stored under key, or nil.
func (c *Compound) Get(key string) Tag {
	return c.m[key]
}

// ContainsKey reports whether key is present.
func (c *Compound) ContainsKey(key string) bool {
	_, ok := c.m[key]
	return ok
}

// Put stores t under key and renames t to key. An existing entry is
// replaced in place. A nil t, including a typed nil pointer such as
// (*Int)(nil), removes key.
func (c *Compound) Put(key string, t Tag) {
	if isNil(t) {
		c.Remove(key)
		return
	}
	if c.m == nil {
		c.m = make(map[string]Tag)
	}
	t.SetName(key)
	if _, ok := c.m[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.m[key] = t
}

// PutClone stores a deep copy of t under key. A nil t removes key.
func (c *Compound) PutClone(key string, t Tag) {
	if isNil(t) {
		c.Remove(key)
		return
	}
	c.Put(key, t.Clone())
}

// Remove deletes key and returns the removed tag, or nil.
func (c *Compound) Remove(key string) Tag {
	t, ok := c.m[key]
	if !ok {
		return nil
	}
	delete(c.m, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return t
}

// Clear removes every entry.
func (c *Compound) Clear() {
	c.keys = nil
	c.m = make(map[string]Tag)
}

// Keys returns the keys in insertion order.
func (c *Compound) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Entries returns the entries in insertion order.
func (c *Compound) Entries() []Entry {
	out := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry{Key: k, Value: c.m[k]}
	}
	return out
}

func (c *Compound) String() string { return describe(TagCompound, len(c.keys)) }

// Clone implements Tag.
func (c *Compound) Clone() Tag {
	out := NewCompound(c.name)
	for _, k := range c.keys {
		out.Put(k, c.m[k].Clone())
	}
	return out
}

// Lookup returns the entry under key when it exists and has type T.
//
//	id, ok := nbt.Lookup[*nbt.Int](root, "id")
func Lookup[T Tag](c *Compound, key string) (T, bool) {
	t, ok := c.Get(key).(T)
	return t, ok
}

// GetByte returns the Byte under key.
func (c *Compound) GetByte(key string) (*Byte, bool) { return Lookup[*Byte](c, key) }

// GetShort returns the Short under key.
func (c *Compound) GetShort(key string) (*Short, bool) { return Lookup[*Short](c, key) }

// GetInt returns the Int under key.
func (c *Compound) GetInt(key string) (*Int, bool) { return Lookup[*Int](c, key) }

// GetLong returns the Long under key.
func (c *Compound) GetLong(key string) (*Long, bool) { return Lookup[*Long](c, key) }

// GetFloat returns the Float under key.
func (c *Compound) GetFloat(key string) (*Float, bool) { return Lookup[*Float](c, key) }

// GetDouble returns the Double under key.
func (c *Compound) GetDouble(key string) (*Double, bool) { return Lookup[*Double](c, key) }

// GetByteArray returns the ByteArray under key.
func (c *Compound) GetByteArray(key string) (*ByteArray, bool) { return Lookup[*ByteArray](c, key) }

// GetString returns the String under key.
func (c *Compound) GetString(key string) (*String, bool) { return Lookup[*String](c, key) }

// GetList returns the List under key.
func (c *Compound) GetList(key string) (*List, bool) { return Lookup[*List](c, key) }

// GetCompound returns the Compound under key.
func (c *Compound) GetCompound(key string) (*Compound, bool) { return Lookup[*Compound](c, key) }

// GetIntArray returns the IntArray under key.
func (c *Compound) GetIntArray(key string) (*IntArray, bool) { return Lookup[*IntArray](c, key) }

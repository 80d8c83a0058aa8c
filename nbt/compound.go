package nbt

import (
	"fmt"
	"iter"

	"github.com/arloliu/litematic/errs"
)

// Compound is an ordered mapping from names to tags.
//
// Insertion order is kept and determines the encoded layout. Replacing the
// value of an existing key keeps the key at its original position. The zero
// value is an empty compound ready to use.
type Compound struct {
	keys  []string
	vals  []Tag
	index map[string]int
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{}
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.keys)
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns the tag stored under key.
func (c *Compound) Get(key string) (Tag, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}

	return c.vals[i], true
}

// Set stores tag under key, appending the key if it is new.
//
// Returns:
//   - error: ErrNilTag if tag is nil
func (c *Compound) Set(key string, tag Tag) error {
	if isNil(tag) {
		return fmt.Errorf("%w: compound key %q", errs.ErrNilTag, key)
	}

	if i, ok := c.index[key]; ok {
		c.vals[i] = tag
		return nil
	}

	c.append(key, tag)

	return nil
}

// MustSet is like Set but panics on a nil tag. It is intended for building
// fixtures and literals.
func (c *Compound) MustSet(key string, tag Tag) *Compound {
	if err := c.Set(key, tag); err != nil {
		panic(err)
	}

	return c
}

// Delete removes key, reporting whether it was present.
func (c *Compound) Delete(key string) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}

	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.vals = append(c.vals[:i], c.vals[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.keys); j++ {
		c.index[c.keys[j]] = j
	}

	return true
}

// Keys returns a copy of the keys in order.
func (c *Compound) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)

	return out
}

// All iterates over the entries in order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for i, k := range c.keys {
			if !yield(k, c.vals[i]) {
				return
			}
		}
	}
}

// insert adds a new key, rejecting duplicates. Used by the decoder.
func (c *Compound) insert(key string, tag Tag) error {
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	}

	c.append(key, tag)

	return nil
}

func (c *Compound) append(key string, tag Tag) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.vals = append(c.vals, tag)
}

package nbt

import (
	"fmt"

	"github.com/arloliu/litematic/errs"
)

// AsCompound returns tag as a compound, or ErrWrongVariant.
func AsCompound(tag Tag) (*Compound, error) {
	c, ok := tag.(*Compound)
	if !ok || c == nil {
		return nil, wrongVariant("Compound", tag)
	}

	return c, nil
}

// AsList returns tag as a list, or ErrWrongVariant.
func AsList(tag Tag) (*List, error) {
	l, ok := tag.(*List)
	if !ok || l == nil {
		return nil, wrongVariant("List", tag)
	}

	return l, nil
}

// Lookup treats tag as a compound and returns the value stored under key.
//
// Returns:
//   - Tag: the value, nil if absent
//   - bool: whether key is present
//   - error: ErrWrongVariant if tag is not a compound
func Lookup(tag Tag, key string) (Tag, bool, error) {
	c, err := AsCompound(tag)
	if err != nil {
		return nil, false, fmt.Errorf("lookup %q: %w", key, err)
	}
	v, ok := c.Get(key)

	return v, ok, nil
}

// Get returns the value under key converted to T.
//
// An absent key is not an error: the zero T and false are returned. A key
// holding a different variant yields ErrWrongVariant.
//
//	name, ok, err := nbt.Get[nbt.String](state, "Name")
//	palette, ok, err := nbt.Get[*nbt.List](region, "BlockStatePalette")
func Get[T Tag](c *Compound, key string) (T, bool, error) {
	var zero T

	v, ok := c.Get(key)
	if !ok {
		return zero, false, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, true, fmt.Errorf("key %q: %w", key, wrongVariant(zero.Type().String(), v))
	}

	return typed, true, nil
}

func wrongVariant(want string, got Tag) error {
	if got == nil {
		return fmt.Errorf("%w: want %s, got nil", errs.ErrWrongVariant, want)
	}

	return fmt.Errorf("%w: want %s, got %s", errs.ErrWrongVariant, want, got.Type())
}

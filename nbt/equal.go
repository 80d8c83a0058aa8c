package nbt

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally identical.
//
// Compound keys must appear in the same order, since order is part of the
// encoded form. Floating point values are compared by bit pattern so that a
// decoded NaN equals itself.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float))) //nolint:forcetypeassert
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double))) //nolint:forcetypeassert
	case ByteArray:
		return slices.Equal(av, b.(ByteArray)) //nolint:forcetypeassert
	case IntArray:
		return slices.Equal(av, b.(IntArray)) //nolint:forcetypeassert
	case LongArray:
		return slices.Equal(av, b.(LongArray)) //nolint:forcetypeassert
	case *List:
		bv := b.(*List) //nolint:forcetypeassert
		if av.elem != bv.elem || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}

		return true
	case *Compound:
		bv := b.(*Compound) //nolint:forcetypeassert
		if !slices.Equal(av.keys, bv.keys) {
			return false
		}
		for i := range av.vals {
			if !Equal(av.vals[i], bv.vals[i]) {
				return false
			}
		}

		return true
	default:
		return a == b
	}
}

// EqualDocument reports whether two documents have the same root name and
// structurally equal roots. The container mode is not compared.
func EqualDocument(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Name == b.Name && Equal(a.Root, b.Root)
}

// Clone returns a deep copy of tag.
func Clone(tag Tag) Tag {
	switch v := tag.(type) {
	case ByteArray:
		return slices.Clone(v)
	case IntArray:
		return slices.Clone(v)
	case LongArray:
		return slices.Clone(v)
	case *List:
		out := &List{elem: v.elem, items: make([]Tag, len(v.items))}
		for i, item := range v.items {
			out.items[i] = Clone(item)
		}

		return out
	case *Compound:
		out := &Compound{}
		for i, k := range v.keys {
			out.append(k, Clone(v.vals[i]))
		}

		return out
	default:
		return tag
	}
}

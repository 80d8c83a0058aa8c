package nbt

import (
	"fmt"
	"iter"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
)

// List is an ordered, homogeneous sequence of tags.
//
// Every element has the list's declared element type. An empty list may
// declare any type, including TagEnd, and keeps it through a round trip.
// The zero value is an empty TagEnd list.
type List struct {
	elem  format.TagType
	items []Tag
}

// NewList creates a list of the given element type holding items.
//
// Returns:
//   - *List: the new list
//   - error: ErrUnknownTagType for an invalid element type, ErrTypeMismatch
//     if any item has a different type, ErrNilTag for a nil item
func NewList(elem format.TagType, items ...Tag) (*List, error) {
	if !elem.Valid() {
		return nil, fmt.Errorf("%w: list element type %d", errs.ErrUnknownTagType, elem)
	}

	l := &List{elem: elem, items: make([]Tag, 0, len(items))}
	for i, item := range items {
		if err := l.check(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		l.items = append(l.items, item)
	}

	return l, nil
}

// MustList is like NewList but panics on error. It is intended for building
// fixtures and literals.
func MustList(elem format.TagType, items ...Tag) *List {
	l, err := NewList(elem, items...)
	if err != nil {
		panic(err)
	}

	return l
}

// ElemType returns the declared element type.
func (l *List) ElemType() format.TagType {
	return l.elem
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the element at index i.
func (l *List) Get(i int) (Tag, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, i, len(l.items))
	}

	return l.items[i], nil
}

// Set replaces the element at index i.
//
// Returns:
//   - error: ErrIndexOutOfRange, or ErrTypeMismatch when tag's type differs
//     from the declared element type
func (l *List) Set(i int, tag Tag) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, i, len(l.items))
	}
	if err := l.check(tag); err != nil {
		return err
	}
	l.items[i] = tag

	return nil
}

// Append adds tag at the end of the list. An empty TagEnd list adopts the
// type of its first element.
func (l *List) Append(tag Tag) error {
	if !isNil(tag) && len(l.items) == 0 && l.elem == format.TagEnd {
		l.elem = tag.Type()
	}
	if err := l.check(tag); err != nil {
		return err
	}
	l.items = append(l.items, tag)

	return nil
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (l *List) check(tag Tag) error {
	if isNil(tag) {
		return errs.ErrNilTag
	}
	if tag.Type() != l.elem {
		return fmt.Errorf("%w: list of %s cannot hold %s", errs.ErrTypeMismatch, l.elem, tag.Type())
	}

	return nil
}

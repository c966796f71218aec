package parsearch

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sequence is a sorted, random-access sequence.
//
// A Sequence is read concurrently by all workers of a search and must not be
// modified while a search is running.
type Sequence[E any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at position i, 0 <= i < Len().
	At(i int) E
}

// Slice adapts a sorted slice to Sequence.
type Slice[E any] []E

func (s Slice[E]) Len() int   { return len(s) }
func (s Slice[E]) At(i int) E { return s[i] }

// Bitmap views a roaring bitmap as the sorted sequence of its members.
//
// Positions are resolved with Select, so At costs a walk over the bitmap's
// containers rather than a slice index.
type Bitmap struct {
	rb *roaring.Bitmap
	n  int
}

// NewBitmap wraps rb. The bitmap must not change while the Bitmap is in use.
func NewBitmap(rb *roaring.Bitmap) *Bitmap {
	return &Bitmap{rb: rb, n: int(rb.GetCardinality())}
}

// BitmapOf builds a Bitmap holding the given values.
func BitmapOf(values ...uint32) *Bitmap {
	return NewBitmap(roaring.BitmapOf(values...))
}

// Len returns the cardinality of the bitmap.
func (b *Bitmap) Len() int {
	return b.n
}

// At returns the i-th smallest member. It panics if i is out of range.
func (b *Bitmap) At(i int) uint32 {
	v, err := b.rb.Select(uint32(i))
	if err != nil {
		panic(fmt.Sprintf("parsearch: bitmap index %d out of range [0:%d]", i, b.n))
	}
	return v
}

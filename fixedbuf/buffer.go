package fixedbuf

import "github.com/sgostarter/libfixedbuf/point"

// Length is the number of slots in every Buffer.
const Length = 10

// Buffer keeps exactly Length points inline. The zero value is ready to use
// with every slot at (0,0). Buffer does no locking; concurrent writers must
// synchronize externally.
type Buffer struct {
	elements [Length]point.Point2d
}

func (b *Buffer) Length() int {
	return Length
}

func (b *Buffer) Get(index int) (p point.Point2d, err error) {
	if index < 0 || index >= Length {
		err = indexError(index)

		return
	}

	p = b.elements[index]

	return
}

// Set stores value at index. Nothing is written when index is out of range.
func (b *Buffer) Set(index int, value point.Point2d) error {
	if index < 0 || index >= Length {
		return indexError(index)
	}

	b.elements[index] = value

	return nil
}

// Points returns a copy of all slots.
func (b *Buffer) Points() [Length]point.Point2d {
	return b.elements
}

func (b *Buffer) Range(fn func(index int, p point.Point2d) bool) {
	for idx, p := range b.elements {
		if !fn(idx, p) {
			return
		}
	}
}

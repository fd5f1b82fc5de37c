package coordinate

import "fmt"

// Point is a (column, row) pair. X is always a column count and Y a row
// count, both 0-indexed.
type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

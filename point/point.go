package point

import "strconv"

// Point2d is an ordered pair of integer coordinates. Values compare with ==.
type Point2d struct {
	X int
	Y int
}

func New(x, y int) Point2d {
	return Point2d{X: x, Y: y}
}

// String renders the point as (X,Y).
func (p Point2d) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

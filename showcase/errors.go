package showcase

import "errors"

var (
	ErrCoordinatesLength = errors.New("coordinates length mismatch")
	ErrBadCoordinate     = errors.New("bad coordinate")
)

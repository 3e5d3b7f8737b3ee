package fixedbuf

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var ErrIndexOutOfRange = fmt.Errorf("index out of range: %w", commerr.ErrOutOfRange)

func indexError(index int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, Length)
}

package point

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointString(t *testing.T) {
	assert.EqualValues(t, "(0,0)", Point2d{}.String())
	assert.EqualValues(t, "(9,81)", New(9, 81).String())
	assert.EqualValues(t, "(-3,12)", New(-3, 12).String())
	assert.EqualValues(t, "(7,49)", fmt.Sprintf("%v", New(7, 49)))
}

func TestPointEqual(t *testing.T) {
	assert.True(t, New(2, 4) == Point2d{X: 2, Y: 4})
	assert.False(t, New(2, 4) == New(4, 2))
	assert.True(t, Point2d{} == New(0, 0))
}

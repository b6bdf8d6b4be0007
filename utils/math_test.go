package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite())
	assert.True(t, IsFinite(0, -1, 1.e300))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFiniteC(complex(1, 2), 0))
	assert.False(t, IsFiniteC(complex(1, math.Inf(1))))
	assert.False(t, IsFiniteC(complex(math.NaN(), 0)))
}

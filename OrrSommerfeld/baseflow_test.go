package OrrSommerfeld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicSolution(t *testing.T) {
	assert.Equal(t, 1., BasicSolution(0))
	assert.Equal(t, 0., BasicSolution(1))
	assert.Equal(t, 0., BasicSolution(-1))
	assert.Equal(t, 0.75, BasicSolution(0.5))
	assert.Equal(t, -3., BasicSolution(2)) // No domain restriction
}

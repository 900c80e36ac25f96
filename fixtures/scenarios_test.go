package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/fixtures"
)

func TestTwoNodeTrivial(t *testing.T) {
	net := fixtures.TwoNodeTrivial()
	assert.Equal(t, 2, net.NumNodes())
	assert.Equal(t, 1, net.NumBranches())
	assert.Equal(t, 1, net.NumGenerators())
	require.NoError(t, net.Validate())
}

func TestTriangle(t *testing.T) {
	net := fixtures.Triangle()
	assert.Equal(t, 3, net.NumNodes())
	assert.Equal(t, 3, net.NumBranches())
	require.NoError(t, net.Validate())
}

func TestIEEE300Subset(t *testing.T) {
	net := fixtures.IEEE300Subset()
	assert.Equal(t, 6, net.NumNodes())
	assert.Equal(t, 5, net.NumBranches())
	assert.Equal(t, 2, net.NumGenerators())
	require.NoError(t, net.Validate())
}

package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingInverse(t *testing.T) {
	m := Mapping{Scale: Pt(2, 4), Offset: Pt(-10, 6)}
	p := m.Apply(Pt(3, 5))
	assert.Equal(t, Pt(-4, 26), p)

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.InDelta(t, 3, inv.Apply(p).X, 1e-9)
	assert.InDelta(t, 5, inv.Apply(p).Y, 1e-9)

	_, ok = Mapping{Scale: Pt(0, 1)}.Inverse()
	assert.False(t, ok)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Pt(1, 1), Pt(4, 5)))
	assert.Equal(t, 0.0, Distance(Pt(2, 2), Pt(2, 2)))
}

func TestMeanLength(t *testing.T) {
	assert.Equal(t, 150, MeanLength(image.Pt(100, 200)))
	assert.Equal(t, 2, MeanLength(image.Pt(2, 3)))
	assert.Equal(t, 0, MeanLength(image.Point{}))
}

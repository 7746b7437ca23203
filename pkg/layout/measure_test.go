package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name   string
		src    image.Point
		width  int
		policy WidthPolicy
		want   Result
	}{
		{"fixed fits", image.Pt(200, 100), 400, Fixed, Result{Viewport: image.Pt(200, 100)}},
		{"fixed too wide", image.Pt(800, 600), 400, Fixed, Result{Viewport: image.Pt(400, 300), PreScale: true}},
		{"elastic grows", image.Pt(200, 100), 400, Elastic, Result{Viewport: image.Pt(400, 200)}},
		{"elastic too wide", image.Pt(1000, 333), 300, Elastic, Result{Viewport: image.Pt(300, 99), PreScale: true}},
		{"empty image", image.Point{}, 400, Elastic, Result{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.src, tt.width, tt.policy))
		})
	}
}

func TestViewLength(t *testing.T) {
	r := Measure(image.Pt(301, 100), 1000, Fixed)
	assert.Equal(t, 200, r.ViewLength())
}

func TestParseWidthPolicy(t *testing.T) {
	p, err := ParseWidthPolicy("Match-Parent")
	require.NoError(t, err)
	assert.Equal(t, Elastic, p)

	p, err = ParseWidthPolicy("")
	require.NoError(t, err)
	assert.Equal(t, Fixed, p)

	_, err = ParseWidthPolicy("stretchy")
	assert.Error(t, err)
}

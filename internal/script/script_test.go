package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomview/pkg/geom"
	"zoomview/pkg/gesture"
)

const pinchThenTap = `
origin_x = 10
origin_y = 20

[[touch]]
seq = 1
type = "begin"
x = 10
y = 20

[[touch]]
seq = 2
type = "begin"
x = 110
y = 20
at_ms = 5

[[touch]]
seq = 2
type = "end"
x = 110
y = 20
at_ms = 10

[[touch]]
seq = 9
type = "move"
x = 0
y = 0

[[touch]]
seq = 1
type = "end"
x = 10
y = 20
at_ms = 15

[[touch]]
type = "cancel"
at_ms = 20
`

func TestFrames(t *testing.T) {
	s, err := Read(strings.NewReader(pinchThenTap))
	require.NoError(t, err)
	require.Len(t, s.Touch, 6)

	frames, err := s.Frames()
	require.NoError(t, err)

	var actions []gesture.Action
	for _, f := range frames {
		actions = append(actions, f.Action)
	}
	assert.Equal(t, []gesture.Action{
		gesture.Down, gesture.Move, gesture.PointerUp, gesture.Up, gesture.Cancel,
	}, actions)

	assert.Equal(t, geom.Pt(0, 0), frames[0].Pointers[0].Local)
	assert.Equal(t, geom.Pt(100, 0), frames[1].Pointers[1].Local)
	assert.Equal(t, 5*time.Millisecond, frames[1].Time)
	assert.Equal(t, 1, frames[2].Index)
}

func TestReadRejectsUnknownType(t *testing.T) {
	_, err := Read(strings.NewReader("[[touch]]\ntype = \"hover\"\n"))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestReadRejectsUnknownKeys(t *testing.T) {
	_, err := Read(strings.NewReader("[[touch]]\ntype = \"begin\"\npressure = 3\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tap.toml")
	require.NoError(t, os.WriteFile(path, []byte(pinchThenTap), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.OriginX)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomview/internal/config"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

const doubleTapScript = `
[[touch]]
seq = 1
type = "begin"
x = 5
y = 5
at_ms = 1000

[[touch]]
seq = 1
type = "end"
x = 5
y = 5
at_ms = 1050

[[touch]]
seq = 2
type = "begin"
x = 5
y = 5
at_ms = 1200

[[touch]]
seq = 2
type = "end"
x = 5
y = 5
at_ms = 1250
`

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, 40, 20)
	scriptPath := filepath.Join(dir, "tap.toml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(doubleTapScript), 0644))
	cfgPath := filepath.Join(dir, "cfg.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0644))

	out := filepath.Join(dir, "out.png")
	ra, err := ParseReplayArgs([]string{img, scriptPath, "-o", out, "-config", cfgPath, "-trace"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Replay(&buf, ra))

	got := buf.String()
	assert.Contains(t, got, "Viewport: 40 × 20")
	assert.Contains(t, got, "Next preset: max")
	assert.Contains(t, got, "preset=fit")
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestParseReplayArgs(t *testing.T) {
	ra, err := ParseReplayArgs([]string{"a.png", "s.toml", "-w", "300"})
	require.NoError(t, err)
	assert.Equal(t, ReplayArgs{Image: "a.png", Script: "s.toml", Output: "output.png", Width: 300}, ra)

	_, err = ParseReplayArgs([]string{"a.png"})
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	img := writePNG(t, t.TempDir(), 7, 3)
	var buf bytes.Buffer
	require.NoError(t, Info(&buf, img))
	assert.Contains(t, buf.String(), "Size: 7 × 3 pixels")
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintConfig(&buf))

	cfg := &config.Config{}
	require.NoError(t, config.Parse(buf.Bytes(), cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLogger(config.LogSettings{Level: "chatty"})
	assert.Error(t, err)
}

func TestParseGUIArgs(t *testing.T) {
	ga, err := ParseGUIArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, GUIArgs{}, ga)

	ga, err = ParseGUIArgs([]string{"photo.jpg", "-config", "z.toml"})
	require.NoError(t, err)
	assert.Equal(t, GUIArgs{Image: "photo.jpg", Config: "z.toml"}, ga)

	_, err = ParseGUIArgs([]string{"a.png", "b.png"})
	assert.Error(t, err)
}

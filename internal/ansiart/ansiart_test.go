package ansiart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderDimensions(t *testing.T) {
	t.Parallel()

	art := Render(solid(color.RGBA{200, 10, 10, 255}, 50, 70), 6, 4)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, 6, VisibleWidth(line))
		require.Equal(t, strings.Repeat("▀", 6), StripANSI(line))
	}
	require.Contains(t, art, "\x1b[38;2;200;10;10m")
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "c1.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(color.White, 8, 8)))
	require.NoError(t, f.Close())

	art, err := RenderFile(path, 2, 2)
	require.NoError(t, err)
	require.Contains(t, art, "\x1b[48;2;255;255;255m")

	_, err = RenderFile(filepath.Join(t.TempDir(), "none.png"), 2, 2)
	require.ErrorContains(t, err, "failed to open image")

	_, err = RenderFile(path, -1, 2)
	require.ErrorContains(t, err, "invalid size -1x2")
	_, err = RenderFile(path, 2, 0)
	require.ErrorContains(t, err, "invalid size 2x0")
}

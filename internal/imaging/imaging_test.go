package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeTestPNG(t, 40, 30)

	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 30, img.Bounds().Dy())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestNaturalSize(t *testing.T) {
	path := writeTestPNG(t, 640, 480)

	size := NaturalSize(path)
	require.True(t, size.Known())
	require.Equal(t, 640.0, size.Width)
	require.Equal(t, 480.0, size.Height)
}

func TestNaturalSizeUnknownOnError(t *testing.T) {
	size := NaturalSize(filepath.Join(t.TempDir(), "nope.png"))
	require.False(t, size.Known())
}

func TestThumbnailPreservesAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))

	thumb := Thumbnail(src, 200)
	require.Equal(t, 200, thumb.Bounds().Dx())
	require.Equal(t, 100, thumb.Bounds().Dy())
}

func TestThumbnailLeavesSmallImagesAlone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))

	thumb := Thumbnail(src, 200)
	require.Same(t, image.Image(src), thumb)
}

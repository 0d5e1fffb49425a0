package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindera-gaming/svg2polylines/svg"
)

func TestRenderHorizontalLine(t *testing.T) {
	lines := []svg.Polyline{{svg.Pt(0, 0), svg.Pt(10, 0)}}
	img := Render(lines, Options{Width: 64, StrokeWidth: 2, Margin: 4})

	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())

	// the stroke covers rows 3 and 4 around y = margin
	assert.Less(t, img.GrayAt(32, 3).Y, uint8(64))
	assert.Less(t, img.GrayAt(32, 4).Y, uint8(64))
	assert.Equal(t, uint8(255), img.GrayAt(32, 7).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
}

func TestRenderEmpty(t *testing.T) {
	img := Render(nil, DefaultOptions())

	b := img.Bounds()
	assert.Equal(t, 512, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y += 37 {
		for x := b.Min.X; x < b.Max.X; x += 37 {
			assert.Equal(t, uint8(255), img.GrayAt(x, y).Y)
		}
	}
}

func TestRenderKeepsAspectRatio(t *testing.T) {
	lines := []svg.Polyline{{svg.Pt(0, 0), svg.Pt(20, 0), svg.Pt(20, 10)}}
	img := Render(lines, Options{Width: 100, StrokeWidth: 1, Margin: 0})

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	lines := []svg.Polyline{{svg.Pt(0, 0), svg.Pt(5, 5)}}
	require.NoError(t, WritePNG(&buf, lines, DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
}

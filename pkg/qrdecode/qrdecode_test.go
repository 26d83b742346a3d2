package qrdecode_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrcode"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrdecode"
)

func TestRoundTrip(t *testing.T) {
	contents := []string{
		"https://example.com",
		"WIFI:T:nopass;S:Guest;P:;H:false;;",
		"plain text payload with spaces",
	}
	for _, content := range contents {
		opts := qr.Options{Content: content, Size: 400, Margin: 2, Level: qrcode.Medium}
		img, _, err := opts.Render()
		require.NoError(t, err)

		decoded := qrdecode.Decode(img)
		require.True(t, decoded.Found, "content %q", content)
		assert.Equal(t, content, decoded.Content)
	}
}

func TestDecodeBlankImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.White)
		}
	}

	decoded := qrdecode.Decode(img)
	assert.False(t, decoded.Found)
	assert.NotEmpty(t, decoded.Reason)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.png")

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	loaded, format, err := qrdecode.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, loaded.Bounds().Dx())

	_, _, err = qrdecode.Load(filepath.Join(dir, "missing.png"))
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, _, err = qrdecode.Load(garbage)
	require.Error(t, err)
}

func TestLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{A: 255})                         // black
	img.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white

	stats := qrdecode.Luminance(img)
	assert.Equal(t, uint8(0), stats.Min)
	assert.Equal(t, uint8(255), stats.Max)
	assert.Equal(t, 255, stats.Range())

	flat := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			flat.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	stats = qrdecode.Luminance(flat)
	assert.Equal(t, 0, stats.Range())
}

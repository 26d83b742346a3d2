package qr_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrcode"
)

func TestRenderCanvasSize(t *testing.T) {
	opts := qr.Options{
		Content: "https://example.com",
		Size:    300,
		Margin:  2,
		Level:   qrcode.Medium,
	}
	img, warnings, err := opts.Render()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderDotStyles(t *testing.T) {
	for _, style := range []string{"square", "round", "diamond"} {
		opts := qr.Options{
			Content:  "https://example.com",
			Size:     200,
			Margin:   1,
			Level:    qrcode.Medium,
			DotStyle: style,
		}
		img, _, err := opts.Render()
		require.NoError(t, err, "style %s", style)
		assert.Equal(t, 200, img.Bounds().Dx())
	}
}

func TestRenderMissingLogoIsNonFatal(t *testing.T) {
	opts := qr.Options{
		Content:   "https://example.com",
		Size:      200,
		Margin:    1,
		Level:     qrcode.Highest,
		LogoPath:  "does/not/exist.png",
		LogoScale: 0.2,
	}
	img, warnings, err := opts.Render()
	require.NoError(t, err)
	require.NotNil(t, img)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "could not be loaded")
}

func TestRenderPayloadTooLarge(t *testing.T) {
	opts := qr.Options{
		Content: strings.Repeat("x", 4000),
		Size:    200,
		Margin:  1,
		Level:   qrcode.Highest,
	}
	_, _, err := opts.Render()
	require.Error(t, err)
}

func TestEncodeSVG(t *testing.T) {
	markup, err := qr.EncodeSVG("https://example.com", 300, 2, qrcode.Medium, "#112233", "#FFFFFF")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(markup, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(markup, "</svg>"))
	assert.Contains(t, markup, `width="300" height="300"`)
	assert.Contains(t, markup, `fill="#112233"`)
	// Quiet zone padding is margin * 10 units.
	assert.Contains(t, markup, `<rect x="20" y="20"`)
}

func TestMetadata(t *testing.T) {
	version, modules, err := qr.Metadata("https://example.com", qrcode.Medium)
	require.NoError(t, err)
	assert.Greater(t, version, 0)
	assert.Equal(t, 4*version+17, modules)
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]qrcode.RecoveryLevel{
		"L": qrcode.Low,
		"M": qrcode.Medium,
		"Q": qrcode.High,
		"H": qrcode.Highest,
		"":  qrcode.Medium,
	} {
		got, err := qr.ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, "level %q", s)
	}
	_, err := qr.ParseLevel("Z")
	require.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := qr.ParseHex("#1A2B3C")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}, c)

	c, err = qr.ParseHex("ffffff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = qr.ParseHex("#fff")
	require.Error(t, err)
	_, err = qr.ParseHex("#GGGGGG")
	require.Error(t, err)
}

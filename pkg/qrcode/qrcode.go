// Package qr renders QR symbols to raster and vector artifacts. It wraps the
// symbol encoder and composites styling (palette, dot shape, logo overlay,
// border) onto the base matrix. Finder-pattern regions are always drawn as
// plain squares so decorative dot shapes never break decodability.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

// Options controls a single render. Margin is measured in modules; the
// rendered canvas is always exactly Size x Size pixels.
type Options struct {
	Content    string
	Size       int
	Margin     int
	Level      qrcode.RecoveryLevel
	Foreground color.Color
	Background color.Color
	DotStyle   string // "square", "round" or "diamond"

	LogoPath  string
	LogoScale float64 // fraction of canvas, 0 disables the overlay

	BorderWidth float64
	BorderColor color.Color
}

// logoPadding is the extra backing rectangle around the composited logo that
// keeps contrast against the modules beneath it.
const logoPadding = 5

// Render produces the styled symbol. Logo failures are non-fatal: they are
// returned as warnings and the artifact is produced without the logo.
func (o *Options) Render() (image.Image, []string, error) {
	code, err := qrcode.New(o.Content, o.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true

	matrix := code.Bitmap()
	n := len(matrix)
	if n == 0 {
		return nil, nil, fmt.Errorf("encode qr: empty matrix")
	}

	fg := o.Foreground
	if fg == nil {
		fg = color.Black
	}
	bg := o.Background
	if bg == nil {
		bg = color.White
	}

	dc := gg.NewContext(o.Size, o.Size)
	dc.SetColor(bg)
	dc.Clear()

	// Quiet zone is Margin modules wide on every side.
	modulePx := float64(o.Size) / float64(n+2*o.Margin)
	offset := float64(o.Margin) * modulePx

	dc.SetColor(fg)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !matrix[row][col] {
				continue
			}
			x := offset + float64(col)*modulePx
			y := offset + float64(row)*modulePx
			if o.DotStyle == "" || o.DotStyle == "square" || inFinderRegion(col, row, n) {
				dc.DrawRectangle(x, y, modulePx+0.5, modulePx+0.5)
			} else if o.DotStyle == "round" {
				dc.DrawCircle(x+modulePx/2, y+modulePx/2, modulePx/2)
			} else { // diamond
				dc.MoveTo(x+modulePx/2, y)
				dc.LineTo(x+modulePx, y+modulePx/2)
				dc.LineTo(x+modulePx/2, y+modulePx)
				dc.LineTo(x, y+modulePx/2)
				dc.ClosePath()
			}
			dc.Fill()
		}
	}

	var warnings []string
	if o.LogoPath != "" && o.LogoScale > 0 {
		if warn := o.compositeLogo(dc, bg); warn != "" {
			warnings = append(warnings, warn)
		}
	}

	if o.BorderWidth > 0 {
		bc := o.BorderColor
		if bc == nil {
			bc = fg
		}
		dc.SetColor(bc)
		dc.SetLineWidth(o.BorderWidth)
		half := o.BorderWidth / 2
		dc.DrawRectangle(half, half, float64(o.Size)-o.BorderWidth, float64(o.Size)-o.BorderWidth)
		dc.Stroke()
	}

	return dc.Image(), warnings, nil
}

func (o *Options) compositeLogo(dc *gg.Context, bg color.Color) string {
	logo, err := gg.LoadImage(o.LogoPath)
	if err != nil {
		return fmt.Sprintf("logo %s could not be loaded: %v", o.LogoPath, err)
	}

	logoSize := int(float64(o.Size) * o.LogoScale)
	if logoSize < 1 {
		return fmt.Sprintf("logo scale %.2f too small for canvas", o.LogoScale)
	}
	x := (o.Size - logoSize) / 2
	y := (o.Size - logoSize) / 2

	// Opaque backing keeps the logo readable against the modules below it.
	dc.SetColor(bg)
	dc.DrawRectangle(
		float64(x-logoPadding), float64(y-logoPadding),
		float64(logoSize+2*logoPadding), float64(logoSize+2*logoPadding),
	)
	dc.Fill()

	resized := resize.Resize(uint(logoSize), uint(logoSize), logo, resize.Lanczos3)
	dc.DrawImage(resized, x, y)
	return ""
}

// inFinderRegion reports whether the module belongs to one of the three
// finder patterns (including their separator ring).
func inFinderRegion(col, row, n int) bool {
	const f = 8
	if col < f && row < f {
		return true
	}
	if col >= n-f && row < f {
		return true
	}
	return col < f && row >= n-f
}

// EncodePNG serializes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG serializes img as JPEG at high quality.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Metadata re-encodes content at level and reports the symbol version and
// module count.
func Metadata(content string, level qrcode.RecoveryLevel) (version, modules int, err error) {
	code, err := qrcode.New(content, level)
	if err != nil {
		return 0, 0, err
	}
	code.DisableBorder = true
	return code.VersionNumber, len(code.Bitmap()), nil
}

// ParseLevel maps the single-letter level name onto the encoder's recovery
// level.
func ParseLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcode.Low, nil
	case "M", "":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}

// ParseHex parses a 6-hex-digit color with optional leading '#'.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

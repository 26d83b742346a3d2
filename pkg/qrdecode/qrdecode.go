// Package qrdecode wraps the image-to-bits QR decoding primitive. It
// distinguishes an unreadable file (hard error) from a readable image that
// simply contains no symbol (soft negative).
package qrdecode

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
)

// Decoded is the outcome of a decode attempt on a readable image.
type Decoded struct {
	Found   bool
	Content string
	Level   string // error correction level, "" when the decoder hides it
	Reason  string // populated when Found is false
}

// Load opens and decodes the raster file at path. Errors here are hard
// failures: the caller never gets a soft negative for an unreadable image.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Decode scans img for a QR symbol.
func Decode(img image.Image) *Decoded {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return &Decoded{Reason: fmt.Sprintf("image could not be binarized: %v", err)}
	}

	reader := zxqr.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := reader.Decode(bmp, hints)
	if err != nil {
		return &Decoded{Reason: "no QR code detected in image"}
	}

	d := &Decoded{Found: true, Content: result.GetText()}
	if meta := result.GetResultMetadata(); meta != nil {
		if lvl, ok := meta[gozxing.ResultMetadataType_ERROR_CORRECTION_LEVEL]; ok {
			if s, ok := lvl.(string); ok {
				d.Level = s
			}
		}
	}
	return d
}

// LuminanceStats is the observed luminance range of an image, used by the
// quality heuristics to judge contrast.
type LuminanceStats struct {
	Min uint8
	Max uint8
}

// Range reports the max-min spread of the luminance channel.
func (s LuminanceStats) Range() int {
	return int(s.Max) - int(s.Min)
}

// Luminance scans img and returns its luminance extremes (ITU-R BT.601
// weights).
func Luminance(img image.Image) LuminanceStats {
	bounds := img.Bounds()
	stats := LuminanceStats{Min: 255, Max: 0}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			luma := uint8((299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000)
			if luma < stats.Min {
				stats.Min = luma
			}
			if luma > stats.Max {
				stats.Max = luma
			}
		}
	}
	if stats.Max < stats.Min {
		return LuminanceStats{}
	}
	return stats
}

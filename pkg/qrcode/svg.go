package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// svgModuleUnit is the side of one module in SVG user units; the quiet zone
// padding is margin * 10 units, one module per margin step.
const svgModuleUnit = 10

// EncodeSVG produces self-contained SVG markup for the payload. The rendered
// width/height honor size; fg and bg are hex colors.
func EncodeSVG(content string, size, margin int, level qrcode.RecoveryLevel, fg, bg string) (string, error) {
	code, err := qrcode.New(content, level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true

	matrix := code.Bitmap()
	n := len(matrix)
	if n == 0 {
		return "", fmt.Errorf("encode qr: empty matrix")
	}

	if fg == "" {
		fg = "#000000"
	}
	if bg == "" {
		bg = "#FFFFFF"
	}

	pad := margin * svgModuleUnit
	total := n*svgModuleUnit + 2*pad

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		total, total, size, size,
	)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, total, total, bg)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if matrix[y][x] {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
					pad+x*svgModuleUnit, pad+y*svgModuleUnit, svgModuleUnit, svgModuleUnit, fg)
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

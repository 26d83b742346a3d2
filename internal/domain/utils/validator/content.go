package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
)

// MaxContentLength is the practical symbol capacity at the lowest density.
const MaxContentLength = 4296

// Content rejects empty, whitespace-only, and oversized payloads. It runs
// before every generation path, including structured payloads after encoding.
func Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return errorz.Validation("content must not be empty", errorz.ContentEmpty, nil)
	}
	// Length is counted in characters, not bytes, so multibyte payloads are
	// not penalized.
	if n := utf8.RuneCountInString(content); n > MaxContentLength {
		return errorz.Validation(
			fmt.Sprintf("content length %d exceeds maximum of %d", n, MaxContentLength),
			errorz.ContentTooLong,
			map[string]any{"length": n, "max": MaxContentLength},
		)
	}
	return nil
}

// Email reports whether addr parses as an RFC 5322 address.
func Email(addr string) bool {
	_, err := mail.ParseAddress(addr)
	return err == nil
}

// URL reports whether raw parses as an absolute http(s) URL.
func URL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Config checks the encoding bounds. Out-of-range values are rejected, never
// clamped.
func Config(cfg entity.GenerationConfig) error {
	if cfg.Size < entity.MinSize || cfg.Size > entity.MaxSize {
		return errorz.Validation(
			fmt.Sprintf("size %d out of range [%d, %d]", cfg.Size, entity.MinSize, entity.MaxSize),
			errorz.InvalidConfig,
			map[string]any{"size": cfg.Size},
		)
	}
	if cfg.Margin != nil && (*cfg.Margin < 0 || *cfg.Margin > entity.MaxMargin) {
		return errorz.Validation(
			fmt.Sprintf("margin %d out of range [0, %d]", *cfg.Margin, entity.MaxMargin),
			errorz.InvalidConfig,
			map[string]any{"margin": *cfg.Margin},
		)
	}
	switch cfg.ErrorCorrectionLevel {
	case entity.LevelLow, entity.LevelMedium, entity.LevelQuarter, entity.LevelHigh:
	default:
		return errorz.Validation(
			fmt.Sprintf("unknown error correction level %q", cfg.ErrorCorrectionLevel),
			errorz.InvalidConfig,
			map[string]any{"errorCorrectionLevel": cfg.ErrorCorrectionLevel},
		)
	}
	switch cfg.Format {
	case entity.FormatPNG, entity.FormatSVG, entity.FormatPDF, entity.FormatJPEG:
	default:
		return errorz.Validation(
			fmt.Sprintf("unknown format %q", cfg.Format),
			errorz.InvalidConfig,
			map[string]any{"format": cfg.Format},
		)
	}
	return nil
}

// Style checks the decorative bounds, most importantly the logo overlay
// fraction which must stay within the error-correction recoverable margin.
func Style(style entity.StyleSpec) error {
	if style.LogoPath != "" {
		if style.LogoSize < entity.MinLogoSize || style.LogoSize > entity.MaxLogoSize {
			return errorz.Validation(
				fmt.Sprintf("logo size %.2f out of range [%.1f, %.1f]", style.LogoSize, entity.MinLogoSize, entity.MaxLogoSize),
				errorz.InvalidStyle,
				map[string]any{"logoSize": style.LogoSize},
			)
		}
	}
	if style.CornerRadius < 0 || style.CornerRadius > entity.MaxCornerRadius {
		return errorz.Validation(
			fmt.Sprintf("corner radius %d out of range [0, %d]", style.CornerRadius, entity.MaxCornerRadius),
			errorz.InvalidStyle,
			map[string]any{"cornerRadius": style.CornerRadius},
		)
	}
	if style.BorderWidth < 0 || style.BorderWidth > entity.MaxBorderWidth {
		return errorz.Validation(
			fmt.Sprintf("border width %d out of range [0, %d]", style.BorderWidth, entity.MaxBorderWidth),
			errorz.InvalidStyle,
			map[string]any{"borderWidth": style.BorderWidth},
		)
	}
	for _, c := range []string{style.ForegroundColor, style.BackgroundColor, style.GradientStart, style.GradientEnd, style.BorderColor} {
		if c == "" {
			continue
		}
		if !hexColor(c) {
			return errorz.Validation(
				fmt.Sprintf("invalid color %q, want 6 hex digits", c),
				errorz.InvalidStyle,
				map[string]any{"color": c},
			)
		}
	}
	return nil
}

func hexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

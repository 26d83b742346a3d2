package entity

// Format is the output artifact format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatJPEG Format = "jpeg"
)

func (f Format) Extension() string {
	return string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPEG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ErrorCorrectionLevel is the QR redundancy tier, trading data capacity for
// damage tolerance.
type ErrorCorrectionLevel string

const (
	LevelLow     ErrorCorrectionLevel = "L"
	LevelMedium  ErrorCorrectionLevel = "M"
	LevelQuarter ErrorCorrectionLevel = "Q"
	LevelHigh    ErrorCorrectionLevel = "H"
)

// DotStyle selects the module shape drawn by the compositor.
type DotStyle string

const (
	DotSquare  DotStyle = "square"
	DotRound   DotStyle = "round"
	DotDiamond DotStyle = "diamond"
)

// GenerationConfig controls symbol encoding. Unset fields take defaults;
// out-of-range values are rejected before encoding, never clamped. Margin is
// a pointer so that an explicit zero quiet zone stays distinguishable from
// "not set".
type GenerationConfig struct {
	Size                 int                  `json:"size"`
	Margin               *int                 `json:"margin,omitempty"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel"`
	Format               Format               `json:"format"`
}

// Ptr returns a pointer to v, for optional config fields.
func Ptr[T any](v T) *T { return &v }

const (
	DefaultSize   = 300
	DefaultMargin = 1

	MinSize   = 50
	MaxSize   = 2000
	MaxMargin = 10
)

// WithDefaults fills unset fields with the documented defaults
// (size=300, margin=1, level=M, format=png).
func (c GenerationConfig) WithDefaults() GenerationConfig {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Margin == nil {
		c.Margin = Ptr(DefaultMargin)
	}
	if c.ErrorCorrectionLevel == "" {
		c.ErrorCorrectionLevel = LevelMedium
	}
	if c.Format == "" {
		c.Format = FormatPNG
	}
	return c
}

// Merge overlays non-zero fields of override onto c (shallow, per-field).
func (c GenerationConfig) Merge(override *GenerationConfig) GenerationConfig {
	if override == nil {
		return c
	}
	if override.Size != 0 {
		c.Size = override.Size
	}
	if override.Margin != nil {
		c.Margin = override.Margin
	}
	if override.ErrorCorrectionLevel != "" {
		c.ErrorCorrectionLevel = override.ErrorCorrectionLevel
	}
	if override.Format != "" {
		c.Format = override.Format
	}
	return c
}

// StyleSpec describes decorative post-processing of the base symbol. Colors
// are 6-hex-digit values with optional leading '#'. CornerRadius and the
// gradient colors are accepted and validated but currently render as no-ops.
type StyleSpec struct {
	ForegroundColor string   `json:"foregroundColor"`
	BackgroundColor string   `json:"backgroundColor"`
	LogoPath        string   `json:"logoPath,omitempty"`
	LogoSize        float64  `json:"logoSize,omitempty"`
	CornerRadius    int      `json:"cornerRadius,omitempty"`
	DotStyle        DotStyle `json:"dotStyle,omitempty"`
	GradientStart   string   `json:"gradientStart,omitempty"`
	GradientEnd     string   `json:"gradientEnd,omitempty"`
	BorderWidth     int      `json:"borderWidth,omitempty"`
	BorderColor     string   `json:"borderColor,omitempty"`
}

const (
	// MaxLogoSize keeps the overlay inside the error-correction recoverable
	// margin.
	MaxLogoSize = 0.4
	MinLogoSize = 0.1

	MaxCornerRadius = 50
	MaxBorderWidth  = 20
)

// WithDefaults fills unset colors and sizes.
func (s StyleSpec) WithDefaults() StyleSpec {
	if s.ForegroundColor == "" {
		s.ForegroundColor = "#000000"
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = "#FFFFFF"
	}
	if s.LogoPath != "" && s.LogoSize == 0 {
		s.LogoSize = 0.2
	}
	if s.DotStyle == "" {
		s.DotStyle = DotSquare
	}
	if s.BorderWidth > 0 && s.BorderColor == "" {
		s.BorderColor = s.ForegroundColor
	}
	return s
}

// Merge overlays non-zero fields of override onto s (shallow, per-field).
func (s StyleSpec) Merge(override *StyleSpec) StyleSpec {
	if override == nil {
		return s
	}
	if override.ForegroundColor != "" {
		s.ForegroundColor = override.ForegroundColor
	}
	if override.BackgroundColor != "" {
		s.BackgroundColor = override.BackgroundColor
	}
	if override.LogoPath != "" {
		s.LogoPath = override.LogoPath
	}
	if override.LogoSize != 0 {
		s.LogoSize = override.LogoSize
	}
	if override.CornerRadius != 0 {
		s.CornerRadius = override.CornerRadius
	}
	if override.DotStyle != "" {
		s.DotStyle = override.DotStyle
	}
	if override.GradientStart != "" {
		s.GradientStart = override.GradientStart
	}
	if override.GradientEnd != "" {
		s.GradientEnd = override.GradientEnd
	}
	if override.BorderWidth != 0 {
		s.BorderWidth = override.BorderWidth
	}
	if override.BorderColor != "" {
		s.BorderColor = override.BorderColor
	}
	return s
}

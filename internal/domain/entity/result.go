package entity

import "time"

// GenerationMetadata accompanies every produced artifact.
type GenerationMetadata struct {
	GeneratedAt     time.Time `json:"generatedAt"`
	OriginalContent string    `json:"originalContent"`
	EstimatedSize   int       `json:"estimatedSize"`
}

// GenerationResult is produced once per generation call; ownership transfers
// to the caller immediately.
type GenerationResult struct {
	Success     bool               `json:"success"`
	FilePath    string             `json:"filePath,omitempty"`
	Data        []byte             `json:"data,omitempty"`
	Markup      string             `json:"markup,omitempty"`
	Format      Format             `json:"format"`
	SizeBytes   int                `json:"sizeBytes"`
	ContentType string             `json:"contentType"`
	Metadata    GenerationMetadata `json:"metadata"`
	Error       string             `json:"error,omitempty"`
}

// DecodeMetadata is the structural metadata recovered from a decoded symbol.
// MaskPattern is -1 when the decoder does not expose it.
type DecodeMetadata struct {
	Version              int                  `json:"version"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel"`
	MaskPattern          int                  `json:"maskPattern"`
	ModuleCount          int                  `json:"moduleCount"`
}

// DecodeResult reports a decode attempt. A readable image with no symbol is a
// soft negative: Success=false with Error populated, not a typed failure.
type DecodeResult struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content,omitempty"`
	Format   string         `json:"format,omitempty"`
	Metadata DecodeMetadata `json:"metadata"`
	Error    string         `json:"error,omitempty"`
}

// Readability is the qualitative bucket derived from the quality score.
type Readability string

const (
	ReadabilityExcellent Readability = "excellent"
	ReadabilityGood      Readability = "good"
	ReadabilityFair      Readability = "fair"
	ReadabilityPoor      Readability = "poor"
)

// QualityResult scores a decoded image against fixed heuristics.
type QualityResult struct {
	Score           int         `json:"score"`
	Readability     Readability `json:"readability"`
	Recommendations []string    `json:"recommendations"`
}

// BatchItem is one entry of a batch generation request.
type BatchItem struct {
	Content string            `json:"content"`
	Config  *GenerationConfig `json:"config,omitempty"`
	Style   *StyleSpec        `json:"style,omitempty"`
}

// BatchResult aggregates per-item outcomes. A failed item never aborts the
// items after it.
type BatchResult struct {
	Results      []GenerationResult `json:"results"`
	SuccessCount int                `json:"successCount"`
	FailedCount  int                `json:"failedCount"`
}

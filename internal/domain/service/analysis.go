package service

import (
	"context"
	"image"
	"os"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger/types"
	qr "github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrcode"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrdecode"
)

// Quality heuristic thresholds. These are fixed contract values: identical
// inputs always yield the identical score and tier.
const (
	minDimension       = 200
	minLuminanceRange  = 128
	longContentLength  = 1000
	resolutionPenalty  = 20
	contrastPenalty    = 30
	longContentPenalty = 10
)

// AnalysisService decodes raster images back into content and scores decode
// quality.
type AnalysisService struct {
	logger *types.Logger
}

func NewAnalysisService(logger *types.Logger) *AnalysisService {
	return &AnalysisService{logger: logger}
}

// Decode reads the image at path and scans it for a QR symbol. A missing or
// unreadable file is a hard analysis error; a readable image without a
// symbol is a soft negative result.
func (s *AnalysisService) Decode(ctx context.Context, imagePath string) (*entity.DecodeResult, error) {
	img, format, err := s.load(imagePath)
	if err != nil {
		return nil, err
	}
	return s.scan(img, format, imagePath), nil
}

// DecodeWithQuality decodes and scores the image in one pass. The decode
// half carries the same symbol metadata Decode reports.
func (s *AnalysisService) DecodeWithQuality(ctx context.Context, imagePath string) (*entity.DecodeResult, *entity.QualityResult, error) {
	img, format, err := s.load(imagePath)
	if err != nil {
		return nil, nil, err
	}

	decodeResult := s.scan(img, format, imagePath)
	bounds := img.Bounds()
	quality := Assess(bounds.Dx(), bounds.Dy(), qrdecode.Luminance(img), decodeResult.Content)
	return decodeResult, &quality, nil
}

func (s *AnalysisService) load(imagePath string) (image.Image, string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, "", errorz.Analysis("image file not found", err, map[string]any{"path": imagePath})
	}

	img, format, err := qrdecode.Load(imagePath)
	if err != nil {
		return nil, "", errorz.Analysis("image could not be read", err, map[string]any{"path": imagePath})
	}
	return img, format, nil
}

// scan runs the decoder over img and builds the decode result, recovering
// symbol metadata on success.
func (s *AnalysisService) scan(img image.Image, format, imagePath string) *entity.DecodeResult {
	decoded := qrdecode.Decode(img)
	if !decoded.Found {
		s.logger.Debugf("no symbol in %s: %s", imagePath, decoded.Reason)
		return &entity.DecodeResult{
			Success:  false,
			Format:   format,
			Metadata: entity.DecodeMetadata{MaskPattern: -1},
			Error:    decoded.Reason,
		}
	}

	result := &entity.DecodeResult{
		Success: true,
		Content: decoded.Content,
		Format:  format,
		Metadata: entity.DecodeMetadata{
			ErrorCorrectionLevel: entity.ErrorCorrectionLevel(decoded.Level),
			MaskPattern:          -1,
		},
	}
	if result.Metadata.ErrorCorrectionLevel == "" {
		result.Metadata.ErrorCorrectionLevel = entity.LevelMedium
	}

	// The decoder does not surface the symbol version; recover it by
	// re-encoding the payload at the detected level.
	if level, err := qr.ParseLevel(string(result.Metadata.ErrorCorrectionLevel)); err == nil {
		if version, modules, err := qr.Metadata(decoded.Content, level); err == nil {
			result.Metadata.Version = version
			result.Metadata.ModuleCount = modules
		}
	}
	return result
}

// Assess derives the 0-100 score and readability tier from resolution,
// contrast and payload length. Pure and deterministic.
func Assess(width, height int, lum qrdecode.LuminanceStats, content string) entity.QualityResult {
	score := 100
	recommendations := []string{}

	if width < minDimension || height < minDimension {
		score -= resolutionPenalty
		recommendations = append(recommendations, "increase image resolution to at least 200x200 pixels")
	}
	if lum.Range() < minLuminanceRange {
		score -= contrastPenalty
		recommendations = append(recommendations, "improve contrast between foreground and background")
	}
	if len(content) > longContentLength {
		score -= longContentPenalty
		recommendations = append(recommendations, "shorten content to improve scan reliability")
	}
	if score < 0 {
		score = 0
	}

	return entity.QualityResult{
		Score:           score,
		Readability:     readability(score),
		Recommendations: recommendations,
	}
}

func readability(score int) entity.Readability {
	switch {
	case score >= 90:
		return entity.ReadabilityExcellent
	case score >= 70:
		return entity.ReadabilityGood
	case score >= 50:
		return entity.ReadabilityFair
	default:
		return entity.ReadabilityPoor
	}
}

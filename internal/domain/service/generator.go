package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/utils/payload"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/utils/validator"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger/types"
	qr "github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/qrcode"
)

// GeneratorService drives the encode pipeline: validate, encode, style,
// write the artifact, record statistics.
type GeneratorService struct {
	outputDir string
	stats     *StatsService
	logger    *types.Logger
}

func NewGeneratorService(logger *types.Logger, outputDir string, stats *StatsService) *GeneratorService {
	return &GeneratorService{
		outputDir: outputDir,
		stats:     stats,
		logger:    logger,
	}
}

// Generate encodes content with the default style.
func (s *GeneratorService) Generate(ctx context.Context, content string, cfg entity.GenerationConfig) (*entity.GenerationResult, error) {
	return s.GenerateStyled(ctx, content, cfg, entity.StyleSpec{})
}

// GenerateStyled encodes content and composites the requested styling.
// Validation failures short-circuit before any encode attempt; nothing is
// written and statistics stay unchanged on failure.
func (s *GeneratorService) GenerateStyled(ctx context.Context, content string, cfg entity.GenerationConfig, style entity.StyleSpec) (*entity.GenerationResult, error) {
	cfg = cfg.WithDefaults()
	style = style.WithDefaults()

	if err := validator.Content(content); err != nil {
		return nil, err
	}
	if err := validator.Config(cfg); err != nil {
		return nil, err
	}
	if err := validator.Style(style); err != nil {
		return nil, err
	}

	started := time.Now()

	var data []byte
	var markup string
	switch cfg.Format {
	case entity.FormatPDF:
		return nil, errorz.Generation(
			"pdf output is not implemented",
			errorz.UnsupportedFormat,
			map[string]any{"format": cfg.Format},
		)
	case entity.FormatSVG:
		m, err := s.renderSVG(content, cfg, style)
		if err != nil {
			return nil, err
		}
		// Vector output carries no logo or border; surface the skip the
		// same way raster surfaces logo problems.
		if style.LogoPath != "" {
			s.logger.Warnf("styling: logo overlay is not supported for svg output, skipping")
		}
		if style.BorderWidth > 0 {
			s.logger.Warnf("styling: border is not supported for svg output, skipping")
		}
		markup = m
		data = []byte(m)
	default:
		d, err := s.renderRaster(content, cfg, style)
		if err != nil {
			return nil, err
		}
		data = d
	}

	filename := fmt.Sprintf("qr-%s.%s", uuid.New().String(), cfg.Format.Extension())
	filePath := filepath.Join(s.outputDir, filename)
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, errorz.Generation("failed to create output directory", err, map[string]any{"dir": s.outputDir})
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return nil, errorz.Generation("failed to write artifact", err, map[string]any{"path": filePath})
	}

	result := &entity.GenerationResult{
		Success:     true,
		FilePath:    filePath,
		Data:        data,
		Markup:      markup,
		Format:      cfg.Format,
		SizeBytes:   len(data),
		ContentType: cfg.Format.ContentType(),
		Metadata: entity.GenerationMetadata{
			GeneratedAt:     started,
			OriginalContent: content,
			EstimatedSize:   len(content),
		},
	}

	s.stats.Record(cfg.Format, len(data), time.Since(started))
	s.logger.Debugf("generated %s artifact (%d bytes) at %s", cfg.Format, len(data), filePath)
	return result, nil
}

func (s *GeneratorService) renderSVG(content string, cfg entity.GenerationConfig, style entity.StyleSpec) (string, error) {
	level, err := qr.ParseLevel(string(cfg.ErrorCorrectionLevel))
	if err != nil {
		return "", errorz.Generation("invalid error correction level", err, nil)
	}
	markup, err := qr.EncodeSVG(content, cfg.Size, *cfg.Margin, level, style.ForegroundColor, style.BackgroundColor)
	if err != nil {
		return "", errorz.Generation(
			"content could not be encoded at the requested error correction level",
			err,
			map[string]any{"contentLength": len(content), "level": cfg.ErrorCorrectionLevel},
		)
	}
	return markup, nil
}

func (s *GeneratorService) renderRaster(content string, cfg entity.GenerationConfig, style entity.StyleSpec) ([]byte, error) {
	level, err := qr.ParseLevel(string(cfg.ErrorCorrectionLevel))
	if err != nil {
		return nil, errorz.Generation("invalid error correction level", err, nil)
	}
	fg, err := qr.ParseHex(style.ForegroundColor)
	if err != nil {
		return nil, errorz.Generation("invalid foreground color", err, nil)
	}
	bg, err := qr.ParseHex(style.BackgroundColor)
	if err != nil {
		return nil, errorz.Generation("invalid background color", err, nil)
	}

	opts := qr.Options{
		Content:     content,
		Size:        cfg.Size,
		Margin:      *cfg.Margin,
		Level:       level,
		Foreground:  fg,
		Background:  bg,
		DotStyle:    string(style.DotStyle),
		LogoPath:    style.LogoPath,
		LogoScale:   style.LogoSize,
		BorderWidth: float64(style.BorderWidth),
	}
	if style.BorderWidth > 0 {
		bc, err := qr.ParseHex(style.BorderColor)
		if err != nil {
			return nil, errorz.Generation("invalid border color", err, nil)
		}
		opts.BorderColor = bc
	}

	img, warnings, err := opts.Render()
	if err != nil {
		return nil, errorz.Generation(
			"content could not be encoded at the requested error correction level",
			err,
			map[string]any{"contentLength": len(content), "level": cfg.ErrorCorrectionLevel},
		)
	}
	// Logo problems degrade styling only; the artifact is still produced.
	for _, w := range warnings {
		s.logger.Warnf("styling: %s", w)
	}

	if cfg.Format == entity.FormatJPEG {
		data, err := qr.EncodeJPEG(img)
		if err != nil {
			return nil, errorz.Generation("failed to encode jpeg", err, nil)
		}
		return data, nil
	}
	data, err := qr.EncodePNG(img)
	if err != nil {
		return nil, errorz.Generation("failed to encode png", err, nil)
	}
	return data, nil
}

// GenerateContact serializes a contact record to its vCard payload and
// encodes it.
func (s *GeneratorService) GenerateContact(ctx context.Context, contact entity.ContactRecord, cfg entity.GenerationConfig, style entity.StyleSpec) (*entity.GenerationResult, error) {
	if err := validator.Record(contact); err != nil {
		return nil, err
	}
	return s.GenerateStyled(ctx, payload.Contact(contact), cfg, style)
}

// GenerateNetwork serializes WiFi credentials to the WIFI: payload and
// encodes it.
func (s *GeneratorService) GenerateNetwork(ctx context.Context, cred entity.NetworkCredential, cfg entity.GenerationConfig, style entity.StyleSpec) (*entity.GenerationResult, error) {
	if err := validator.Record(cred); err != nil {
		return nil, err
	}
	return s.GenerateStyled(ctx, payload.Network(cred), cfg, style)
}

// GenerateEvent serializes a calendar event to its VEVENT payload and
// encodes it.
func (s *GeneratorService) GenerateEvent(ctx context.Context, event entity.CalendarEvent, cfg entity.GenerationConfig, style entity.StyleSpec) (*entity.GenerationResult, error) {
	if err := validator.Record(event); err != nil {
		return nil, err
	}
	text, err := payload.Event(event)
	if err != nil {
		return nil, errorz.Validation("invalid calendar event", err, nil)
	}
	return s.GenerateStyled(ctx, text, cfg, style)
}

// GenerateBatch processes items strictly sequentially; a failure in one item
// never aborts the items after it.
func (s *GeneratorService) GenerateBatch(ctx context.Context, items []entity.BatchItem) *entity.BatchResult {
	batch := &entity.BatchResult{Results: make([]entity.GenerationResult, 0, len(items))}
	for _, item := range items {
		cfg := entity.GenerationConfig{}.Merge(item.Config)
		style := entity.StyleSpec{}.Merge(item.Style)

		result, err := s.GenerateStyled(ctx, item.Content, cfg, style)
		if err != nil {
			batch.Results = append(batch.Results, entity.GenerationResult{
				Success: false,
				Format:  cfg.WithDefaults().Format,
				Error:   err.Error(),
			})
			batch.FailedCount++
			s.logger.Warnf("batch item failed: %v", err)
			continue
		}
		batch.Results = append(batch.Results, *result)
		batch.SuccessCount++
	}
	return batch
}

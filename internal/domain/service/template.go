package service

import (
	"context"
	"sort"
	"sync"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/utils/validator"
)

// TemplateService keeps named (style, config) bundles for the process
// lifetime. Registration overwrites by name; nothing is persisted.
type TemplateService struct {
	mu        sync.Mutex
	templates map[string]entity.Template

	generator *GeneratorService
	stats     *StatsService
}

func NewTemplateService(generator *GeneratorService, stats *StatsService) *TemplateService {
	s := &TemplateService{
		templates: make(map[string]entity.Template),
		generator: generator,
		stats:     stats,
	}
	for _, t := range builtinTemplates() {
		s.templates[t.Name] = t
	}
	return s
}

func builtinTemplates() []entity.Template {
	return []entity.Template{
		{
			Name:        "business",
			Description: "Clean monochrome code for cards and signage",
			Category:    entity.CategoryBusiness,
			Style: entity.StyleSpec{
				ForegroundColor: "#1A1A2E",
				BackgroundColor: "#FFFFFF",
				DotStyle:        entity.DotSquare,
				BorderWidth:     2,
				BorderColor:     "#1A1A2E",
			},
			Config: entity.GenerationConfig{
				Size:                 400,
				Margin:               entity.Ptr(2),
				ErrorCorrectionLevel: entity.LevelQuarter,
				Format:               entity.FormatPNG,
			},
		},
		{
			Name:        "social",
			Description: "Rounded high-contrast code for profiles and posts",
			Category:    entity.CategorySocial,
			Style: entity.StyleSpec{
				ForegroundColor: "#E94560",
				BackgroundColor: "#FFFFFF",
				DotStyle:        entity.DotRound,
			},
			Config: entity.GenerationConfig{
				Size:                 512,
				Margin:               entity.Ptr(1),
				ErrorCorrectionLevel: entity.LevelHigh,
				Format:               entity.FormatPNG,
			},
		},
	}
}

// Register adds or overwrites a template by name.
func (s *TemplateService) Register(t entity.Template) error {
	if err := validator.Record(t); err != nil {
		return err
	}
	t.Style = t.Style.WithDefaults()
	t.Config = t.Config.WithDefaults()
	if err := validator.Config(t.Config); err != nil {
		return err
	}
	if err := validator.Style(t.Style); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.Name] = t
	return nil
}

// Get returns the named template.
func (s *TemplateService) Get(name string) (entity.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.templates[name]
	if !ok {
		return entity.Template{}, errorz.Validation("unknown template", errorz.TemplateNotFound, map[string]any{"name": name})
	}
	return t, nil
}

// List returns all templates in stable name order.
func (s *TemplateService) List() []entity.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]entity.Template, 0, len(s.templates))
	for _, t := range s.templates {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// GenerateFromTemplate merges per-field overrides over the template's style
// and config, runs styled generation, and bumps the template's usage counter.
func (s *TemplateService) GenerateFromTemplate(ctx context.Context, content, name string, styleOverride *entity.StyleSpec, configOverride *entity.GenerationConfig) (*entity.GenerationResult, error) {
	t, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	cfg := t.Config.Merge(configOverride)
	style := t.Style.Merge(styleOverride)

	result, err := s.generator.GenerateStyled(ctx, content, cfg, style)
	if err != nil {
		return nil, err
	}
	s.stats.RecordTemplate(name)
	return result, nil
}

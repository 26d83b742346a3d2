// Package stdio is the thin request/response boundary of the service. It
// reads one JSON request per line from stdin, dispatches to the core
// services, and writes one JSON response per line to stdout. It holds no
// business logic: arguments are decoded into typed structures before the
// core ever sees them, and typed errors are rendered into the error
// envelope callers see.
package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/service"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger/types"
)

const maxRequestBytes = 1 << 20

type Controller struct {
	generator *service.GeneratorService
	templates *service.TemplateService
	analysis  *service.AnalysisService
	stats     *service.StatsService
	logger    *types.Logger

	in  io.Reader
	out io.Writer
}

func New(
	generator *service.GeneratorService,
	templates *service.TemplateService,
	analysis *service.AnalysisService,
	stats *service.StatsService,
	logger *types.Logger,
	in io.Reader,
	out io.Writer,
) *Controller {
	return &Controller{
		generator: generator,
		templates: templates,
		analysis:  analysis,
		stats:     stats,
		logger:    logger,
		in:        in,
		out:       out,
	}
}

type request struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args,omitempty"`
}

type response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result any             `json:"result,omitempty"`
	Error  *errorEnvelope  `json:"error,omitempty"`
}

type errorEnvelope struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Run processes requests until EOF. Requests are handled strictly one at a
// time; shared template and statistics state is only ever mutated between
// reads.
func (c *Controller) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	encoder := json.NewEncoder(c.out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			c.logger.Warnf("malformed request: %v", err)
			_ = encoder.Encode(response{Error: &errorEnvelope{
				Kind:    string(errorz.KindValidation),
				Message: "malformed request: " + err.Error(),
			}})
			continue
		}

		result, err := c.dispatch(ctx, req.Tool, req.Args)
		resp := response{ID: req.ID}
		if err != nil {
			resp.Error = envelope(err)
			c.logger.Warnf("tool %s failed: %v", req.Tool, err)
		} else {
			resp.Result = result
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return scanner.Err()
}

func envelope(err error) *errorEnvelope {
	var typed *errorz.Error
	if errors.As(err, &typed) {
		return &errorEnvelope{
			Kind:    string(typed.Kind),
			Message: typed.Error(),
			Details: typed.Details,
		}
	}
	return &errorEnvelope{Kind: string(errorz.KindGeneration), Message: err.Error()}
}

func (c *Controller) dispatch(ctx context.Context, tool string, args json.RawMessage) (any, error) {
	switch tool {
	case "generate":
		var a struct {
			Content string                  `json:"content"`
			Config  entity.GenerationConfig `json:"config"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.Generate(ctx, a.Content, a.Config)

	case "generate_styled":
		var a struct {
			Content string                  `json:"content"`
			Config  entity.GenerationConfig `json:"config"`
			Style   entity.StyleSpec        `json:"style"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.GenerateStyled(ctx, a.Content, a.Config, a.Style)

	case "generate_from_template":
		var a struct {
			Content  string                   `json:"content"`
			Template string                   `json:"template"`
			Style    *entity.StyleSpec        `json:"style,omitempty"`
			Config   *entity.GenerationConfig `json:"config,omitempty"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.templates.GenerateFromTemplate(ctx, a.Content, a.Template, a.Style, a.Config)

	case "generate_batch":
		var a struct {
			Items []entity.BatchItem `json:"items"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.GenerateBatch(ctx, a.Items), nil

	case "generate_vcard":
		var a struct {
			Contact entity.ContactRecord    `json:"contact"`
			Config  entity.GenerationConfig `json:"config"`
			Style   entity.StyleSpec        `json:"style"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.GenerateContact(ctx, a.Contact, a.Config, a.Style)

	case "generate_wifi":
		var a struct {
			Network entity.NetworkCredential `json:"network"`
			Config  entity.GenerationConfig  `json:"config"`
			Style   entity.StyleSpec         `json:"style"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.GenerateNetwork(ctx, a.Network, a.Config, a.Style)

	case "generate_event":
		var a struct {
			Event  entity.CalendarEvent    `json:"event"`
			Config entity.GenerationConfig `json:"config"`
			Style  entity.StyleSpec        `json:"style"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return c.generator.GenerateEvent(ctx, a.Event, a.Config, a.Style)

	case "decode":
		var a struct {
			ImagePath      string `json:"imagePath"`
			IncludeQuality bool   `json:"includeQuality,omitempty"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		if a.IncludeQuality {
			decoded, quality, err := c.analysis.DecodeWithQuality(ctx, a.ImagePath)
			if err != nil {
				return nil, err
			}
			return map[string]any{"decode": decoded, "quality": quality}, nil
		}
		return c.analysis.Decode(ctx, a.ImagePath)

	case "list_templates":
		return c.templates.List(), nil

	case "add_template":
		var a struct {
			Template entity.Template `json:"template"`
		}
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		if err := c.templates.Register(a.Template); err != nil {
			return nil, err
		}
		return map[string]any{"registered": a.Template.Name}, nil

	case "get_statistics":
		return c.stats.Snapshot(), nil

	default:
		return nil, errorz.Validation("unknown tool", fmt.Errorf("tool %q", tool), map[string]any{"tool": tool})
	}
}

func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errorz.Validation("invalid arguments", err, nil)
	}
	return nil
}

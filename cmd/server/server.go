package server

import (
	"context"
	"os"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/adapters/config"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/adapters/controller/stdio"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/service"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/pkg/logger/types"
)

// Server wires the core services to the stdio boundary.
type Server struct {
	Controller *stdio.Controller
	Stats      *service.StatsService
	Templates  *service.TemplateService
	Logger     *types.Logger
}

func New(cfg *config.Config) (*Server, error) {
	serverLogger, err := logger.Named("server")
	if err != nil {
		return nil, err
	}
	generatorLogger, err := logger.Named("generator")
	if err != nil {
		return nil, err
	}
	analysisLogger, err := logger.Named("analysis")
	if err != nil {
		return nil, err
	}

	stats := service.NewStatsService()
	generator := service.NewGeneratorService(generatorLogger, cfg.OutputDir, stats)
	templates := service.NewTemplateService(generator, stats)
	analysis := service.NewAnalysisService(analysisLogger)

	controller := stdio.New(generator, templates, analysis, stats, serverLogger, os.Stdin, os.Stdout)

	return &Server{
		Controller: controller,
		Stats:      stats,
		Templates:  templates,
		Logger:     serverLogger,
	}, nil
}

func (s *Server) Start() {
	logger.Log.Info("QR tool server starting")
	if err := s.Controller.Run(context.Background()); err != nil {
		s.Logger.Errorf("controller stopped: %v", err)
	}
	logger.Log.Info("QR tool server stopped")
}

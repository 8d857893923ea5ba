package usecase

import (
	"time"

	"intent-router/internal/registry"
	"intent-router/internal/router"
	"intent-router/pkg/log"
	"intent-router/pkg/ollama"
)

// Config holds the routing policy knobs for the classifier.
type Config struct {
	ClassifierModel     string
	ConfidenceThreshold float64
	ClassifyTimeout     time.Duration
}

// implUseCase is the private implementation of router.UseCase.
type implUseCase struct {
	llm      ollama.IOllama
	registry *registry.Registry
	cfg      Config
	l        log.Logger
}

var _ router.UseCase = (*implUseCase)(nil)

// New creates a new router UseCase implementation.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm ollama.IOllama, reg *registry.Registry, cfg Config, l log.Logger) *implUseCase {
	if cfg.ClassifierModel == "" {
		cfg.ClassifierModel = DefaultClassifierModel
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if cfg.ClassifyTimeout <= 0 {
		cfg.ClassifyTimeout = DefaultClassifyTimeout
	}

	return &implUseCase{
		llm:      llm,
		registry: reg,
		cfg:      cfg,
		l:        l,
	}
}

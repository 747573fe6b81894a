package ai

import (
	"context"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Request is a single article handed to a premium backend
type Request struct {
	Text        string
	Source      string
	CountryCode string
	// BiasFocus asks the model to pay extra attention to political framing
	BiasFocus bool
}

// Provider is a premium analysis backend (LLM)
type Provider interface {
	GetName() string
	IsEnabled() bool
	Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error)
}

// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// ErrEmptySymptoms is returned when no symptom text is provided.
var ErrEmptySymptoms = errors.New("symptoms are required")

// AIService suggests a medical specialty for free-text symptoms.
type AIService interface {
	RecommendSpecialty(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error)
}

// DefaultAIService tries the hosted model when requested and available, and
// always falls back to the rule-based matcher. The model is an opaque
// collaborator: any failure or timeout degrades, never errors out.
type DefaultAIService struct {
	Model *GeminiClient
}

// NewDefaultAIService builds the service; an empty API key disables the
// model path entirely.
func NewDefaultAIService(apiKey string) *DefaultAIService {
	svc := &DefaultAIService{}
	if apiKey != "" {
		client, err := NewGeminiClient(apiKey)
		if err != nil {
			utils.GetLogger().Warn("AI model unavailable, using rule-based matcher only", zap.Error(err))
		} else {
			svc.Model = client
		}
	}
	return svc
}

const modelTimeout = 10 * time.Second

func (s *DefaultAIService) RecommendSpecialty(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		return nil, ErrEmptySymptoms
	}

	specialty := ""
	method := "rule-based"

	if req.UseModel && s.Model != nil {
		modelCtx, cancel := context.WithTimeout(ctx, modelTimeout)
		got, err := s.Model.RecommendSpecialty(modelCtx, symptoms)
		cancel()
		if err != nil {
			utils.GetLogger().Warn("model recommendation failed, falling back", zap.Error(err))
		} else if got != "" {
			specialty = got
			method = "model"
		}
	}

	if specialty == "" {
		specialty = MatchSpecialty(symptoms)
	}

	return &models.RecommendResponse{
		Specialty: specialty,
		Method:    method,
		Message:   fmt.Sprintf("Based on your symptoms, we recommend consulting a %s.", specialty),
		Symptoms:  symptoms,
	}, nil
}

// File: services/intelligence/gemini.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the hosted model for specialty triage.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}, nil
}

const specialtyPrompt = `Based on the following symptoms, recommend the most appropriate medical specialty:
Symptoms: %s

Choose from: %s

Respond with only the specialty name.`

// RecommendSpecialty asks the model for a specialty. Output outside the
// closed specialty set is treated as no answer so the rule-based matcher
// takes over.
func (g *GeminiClient) RecommendSpecialty(ctx context.Context, symptoms string) (string, error) {
	prompt := fmt.Sprintf(specialtyPrompt, symptoms, strings.Join(ValidSpecialties, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	answer := strings.TrimSpace(sb.String())
	if !IsValidSpecialty(answer) {
		return "", nil
	}
	return answer, nil
}

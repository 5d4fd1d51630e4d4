package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
)

const model = "gemini-2.0-flash"

type Provider interface {
	GenerateAnalysis(ctx context.Context, repoName string, files []SourceFile) (string, error)
	GenerateQuestions(ctx context.Context, analysis string, count int) ([]GeneratedQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) GenerateAnalysis(ctx context.Context, repoName string, files []SourceFile) (string, error) {
	log := config.WithContext(ctx)
	prompt := analysisSystemPrompt + "\n\n" + buildAnalysisPrompt(repoName, files)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	log.Infof("Generated analysis for %s (%d bytes)", repoName, len(raw))
	return stripFences(raw), nil
}

func (p *geminiProvider) GenerateQuestions(ctx context.Context, analysis string, count int) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)
	prompt := quizSystemPrompt + "\n\n" + buildQuizPrompt(analysis, count)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(stripFences(raw)), &questions); err != nil {
		log.WithError(err).Errorf("Failed to decode quiz JSON:\n%s", raw)
		return nil, fmt.Errorf("decoding quiz JSON: %w", err)
	}

	log.Infof("Generated %d quiz questions", len(questions))
	return questions, nil
}

func (p *geminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("generating content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}

// stripFences removes a surrounding markdown fence the model sometimes
// wraps its output in despite instructions.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```markdown")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "`")
}

package service

import (
	"context"
	"fmt"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// TextGenerator turns a prompt into text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// ExplainService writes short worked explanations for answered questions.
// Without an API key every call returns ErrExplainUnavailable.
type ExplainService struct {
	Generator TextGenerator
}

func NewExplainService(ctx context.Context, cfg config.AIConfig) (*ExplainService, error) {
	if cfg.APIKey == "" {
		logger.Log.Warn("Gemini API key is not set, explanations are disabled")
		return &ExplainService{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &ExplainService{Generator: &geminiGenerator{client: client, model: client.GenerativeModel(cfg.Model)}}, nil
}

func (s *ExplainService) Enabled() bool {
	return s != nil && s.Generator != nil
}

// Close releases the underlying client, if any.
func (s *ExplainService) Close() error {
	if s == nil {
		return nil
	}
	if g, ok := s.Generator.(*geminiGenerator); ok {
		return g.client.Close()
	}
	return nil
}

func (s *ExplainService) Explain(ctx context.Context, q *model.Question, selected string) (string, error) {
	if !s.Enabled() {
		return "", util.ErrExplainUnavailable
	}
	text, err := s.Generator.Generate(ctx, explainPrompt(q, selected))
	if err != nil {
		logger.Log.Warn("Explanation request failed", zap.String("question_id", string(q.ID)), zap.Error(err))
		return "", util.Upstream("explanation service is unavailable", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", util.Upstream("explanation service returned an empty answer", nil)
	}
	return text, nil
}

func explainPrompt(q *model.Question, selected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a maths tutor for a class %d student.\n", q.ClassLevel)
	fmt.Fprintf(&b, "Chapter: %s. Topic: %s.\n\n", q.Chapter, q.Topic)
	fmt.Fprintf(&b, "Question: %s\n", q.QuestionText)

	labels := make([]string, 0, len(q.Options))
	for l := range q.Options {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Fprintf(&b, "%s) %s\n", l, q.Options[l])
	}

	fmt.Fprintf(&b, "\nCorrect answer: %s\n", q.CorrectAnswer)
	if selected == q.CorrectAnswer {
		fmt.Fprintf(&b, "The student chose %s, which is correct. Explain briefly why it is right.\n", selected)
	} else {
		fmt.Fprintf(&b, "The student chose %s. Explain step by step why the correct answer is %s and where the student's choice goes wrong.\n", selected, q.CorrectAnswer)
	}
	b.WriteString("Keep it under 150 words and use plain text.")
	return b.String()
}

package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/RichardoC/senior-care/internal/config"
	"github.com/RichardoC/senior-care/internal/models"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Recorder stores answered consultations.
type Recorder interface {
	SaveConsultation(c *models.Consultation) error
}

type Options struct {
	Models      []string
	Temperature float64
	MaxTokens   int
}

type Service struct {
	llm      llms.Model
	opts     Options
	recorder Recorder
	logger   *zap.Logger
}

// Result is the advisory text and the model that wrote it.
type Result struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

// New builds a Service talking to an OpenAI-compatible endpoint. With an empty
// token the service is still returned but every consultation fails with
// ErrMissingCredential.
func New(cfg config.LLMConfig, token string, recorder Recorder, logger *zap.Logger) (*Service, error) {
	opts := Options{
		Models:      cfg.Models,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	if len(opts.Models) == 0 {
		return nil, errors.New("no models configured")
	}
	if token == "" {
		return NewWithModel(nil, opts, recorder, logger), nil
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Models[0]),
		openai.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, err
	}
	return NewWithModel(llm, opts, recorder, logger), nil
}

// NewWithModel builds a Service on an existing model client. A nil model means
// no credential is configured.
func NewWithModel(model llms.Model, opts Options, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{llm: model, opts: opts, recorder: recorder, logger: logger}
}

// Configured reports whether a credential was available at construction.
func (s *Service) Configured() bool {
	return s.llm != nil
}

// Consult asks the configured models, in order, for advice on situation and
// returns the first answer.
func (s *Service) Consult(ctx context.Context, situation string) (*Result, error) {
	situation = strings.TrimSpace(situation)
	if situation == "" {
		return nil, ErrEmptyInput
	}
	if s.llm == nil {
		return nil, ErrMissingCredential
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt()),
		llms.TextParts(llms.ChatMessageTypeHuman, UserPrompt(situation)),
	}

	content, model, err := FirstSuccess(ctx, s.opts.Models, func(ctx context.Context, model string) (string, error) {
		return s.complete(ctx, model, messages)
	})
	if err != nil {
		s.logger.Error("consultation failed", zap.Int("models", len(s.opts.Models)), zap.Error(err))
		return nil, err
	}

	result := &Result{Content: content, Model: model}
	s.record(situation, result)
	return result, nil
}

func (s *Service) complete(ctx context.Context, model string, messages []llms.MessageContent) (string, error) {
	start := time.Now()
	if ce := s.logger.Check(zap.DebugLevel, "sending consultation"); ce != nil {
		ce.Write(
			zap.String("model", model),
			zap.Int("promptTokens", countTokens(model, messages)),
		)
	}

	resp, err := s.llm.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(s.opts.Temperature),
		llms.WithMaxTokens(s.opts.MaxTokens),
	)
	if err == nil && (resp == nil || len(resp.Choices) == 0) {
		err = errors.New("empty response")
	}
	if err != nil {
		s.logger.Warn("model attempt failed",
			zap.String("model", model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	s.logger.Info("model answered",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(start)))
	return resp.Choices[0].Content, nil
}

func (s *Service) record(situation string, result *Result) {
	if s.recorder == nil {
		return
	}
	entry := &models.Consultation{
		ID:        uuid.NewString(),
		Situation: situation,
		Content:   result.Content,
		Model:     result.Model,
	}
	if err := s.recorder.SaveConsultation(entry); err != nil {
		s.logger.Warn("failed to record consultation", zap.Error(err))
	}
}

// countTokens estimates the prompt size for debug logging.
func countTokens(model string, messages []llms.MessageContent) int {
	n := 0
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				n += llms.CountTokens(model, text.Text)
			}
		}
	}
	return n
}

package provider

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

// OpenAITranslator implements Translator using chat/completions.
type OpenAITranslator struct {
	chatTranslator
}

func NewOpenAITranslator(cfg common.ProvidersConfig, logger *slog.Logger) (*OpenAITranslator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, common.ConfigurationError("OPENAI_API_KEY is required for the openai backend", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAITranslator{chatTranslator{
		name:    constants.BackendOpenAI,
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
		model:   "gpt-4o-mini",
		limits: Limits{
			// 128k context minus a prompt/response buffer
			TokenBudget:    120000 - 2000,
			MaxChunkTokens: 15000,
		},
		client: &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}}, nil
}

func (t *OpenAITranslator) Name() string   { return t.name }
func (t *OpenAITranslator) Limits() Limits { return t.limits }

func (t *OpenAITranslator) Translate(ctx context.Context, text string, opts TranslateOptions) (*Result, error) {
	return t.translate(ctx, text, opts)
}

// compile-time check
var _ Translator = (*OpenAITranslator)(nil)

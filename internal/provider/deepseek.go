package provider

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

// DeepSeek implements Translator using the DeepSeek chat API, which is
// wire-compatible with chat/completions. It works best on small
// chunks, so its limits force much finer splitting than the OpenAI
// backend.
type DeepSeek struct {
	chatTranslator
}

func NewDeepSeek(cfg common.ProvidersConfig, logger *slog.Logger) (*DeepSeek, error) {
	if cfg.DeepSeekAPIKey == "" {
		return nil, common.ConfigurationError("DEEPSEEK_API_KEY is required for the deepseek backend", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DeepSeek{chatTranslator{
		name:    constants.BackendDeepSeek,
		apiKey:  cfg.DeepSeekAPIKey,
		baseURL: cfg.DeepSeekBaseURL,
		model:   "deepseek-chat",
		limits: Limits{
			TokenBudget:    60000,
			MaxChunkTokens: 500,
		},
		client: &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}}, nil
}

func (t *DeepSeek) Name() string   { return t.name }
func (t *DeepSeek) Limits() Limits { return t.limits }

func (t *DeepSeek) Translate(ctx context.Context, text string, opts TranslateOptions) (*Result, error) {
	return t.translate(ctx, text, opts)
}

// compile-time check
var _ Translator = (*DeepSeek)(nil)

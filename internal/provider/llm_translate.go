package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/internal/common"
)

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
		TotalTokens      int64 `json:"total_tokens"`
	} `json:"usage"`
}

// chatTranslator holds the shared chat/completions translation flow
// used by the OpenAI and DeepSeek backends; only endpoint, model, and
// sizing limits differ.
type chatTranslator struct {
	name    string
	apiKey  string
	baseURL string
	model   string
	limits  Limits
	client  *http.Client
	logger  *slog.Logger
}

func buildTranslatePrompt(opts TranslateOptions) string {
	src := "the source language (detect it)"
	if opts.SourceLang != "" {
		src = opts.SourceLang
	}
	return fmt.Sprintf(
		"You are an expert translator. Translate the user's text from %s to %s. "+
			"Preserve meaning, tone, and formatting. Return only the translated text with no commentary.",
		src, opts.TargetLang)
}

func (c *chatTranslator) translate(ctx context.Context, text string, opts TranslateOptions) (*Result, error) {
	if opts.TargetLang == "" {
		return nil, common.InvalidInputError("target language is required", nil)
	}
	start := time.Now()

	body := map[string]any{
		"model":       c.model,
		"temperature": 0.2,
		"messages": []map[string]any{
			{"role": "system", "content": buildTranslatePrompt(opts)},
			{"role": "user", "content": text},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	raw, err := doJSON(ctx, c.client, c.name,
		http.MethodPost, strings.TrimRight(c.baseURL, "/")+"/chat/completions", headers, body)
	if err != nil {
		c.logger.Error("provider."+c.name+".error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.ProviderError("decode "+c.name+" response", err)
	}
	if len(resp.Choices) == 0 {
		return nil, common.ProviderError(c.name+" returned no choices", nil)
	}

	res := &Result{
		Text:       strings.TrimSpace(resp.Choices[0].Message.Content),
		Language:   opts.SourceLang,
		TokensUsed: resp.Usage.TotalTokens,
	}
	c.logger.Info("provider."+c.name+".ok",
		"tokens", res.TokensUsed,
		"target", opts.TargetLang,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

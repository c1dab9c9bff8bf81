package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

type whisperResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Whisper implements Transcriber using the OpenAI audio transcription
// endpoint.
type Whisper struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

func NewWhisper(cfg common.ProvidersConfig, logger *slog.Logger) (*Whisper, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, common.ConfigurationError("OPENAI_API_KEY is required for the whisper backend", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Whisper{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		model:   "whisper-1",
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}, nil
}

func (w *Whisper) Name() string { return constants.BackendWhisper }

func (w *Whisper) Limits() Limits {
	// the endpoint rejects uploads over 25MB
	return Limits{MaxUploadBytes: 25 << 20}
}

func (w *Whisper) Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (*Result, error) {
	start := time.Now()

	f, err := os.Open(audioPath)
	if err != nil {
		return nil, common.StorageError("open audio file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, common.StorageError("read audio file", err)
	}
	_ = mw.WriteField("model", w.model)
	_ = mw.WriteField("response_format", "verbose_json")
	if opts.Language != "" {
		_ = mw.WriteField("language", opts.Language)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := doRaw(w.client, constants.BackendWhisper, req)
	if err != nil {
		w.logger.Error("provider.whisper.error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp whisperResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.ProviderError("decode whisper response", err)
	}

	res := &Result{
		Text:         strings.TrimSpace(resp.Text),
		Language:     resp.Language,
		AudioSeconds: resp.Duration,
	}
	for _, s := range resp.Segments {
		res.Segments = append(res.Segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}

	w.logger.Info("provider.whisper.ok",
		"audio_s", resp.Duration,
		"segments", len(res.Segments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// compile-time check
var _ Transcriber = (*Whisper)(nil)

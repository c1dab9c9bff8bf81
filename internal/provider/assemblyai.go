package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

const assemblyDefaultURL = "https://api.assemblyai.com/v2"

type assemblyTranscript struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Text          string  `json:"text"`
	Error         string  `json:"error"`
	AudioDuration float64 `json:"audio_duration"`
	LanguageCode  string  `json:"language_code"`
	Utterances    []struct {
		Start      int64   `json:"start"` // milliseconds
		End        int64   `json:"end"`
		Speaker    string  `json:"speaker"`
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"utterances"`
}

// AssemblyAI implements Transcriber using the two-step AssemblyAI API:
// upload the bytes, then poll the transcript job until it settles.
type AssemblyAI struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	logger   *slog.Logger
	pollWait time.Duration
}

func NewAssemblyAI(cfg common.ProvidersConfig, logger *slog.Logger) (*AssemblyAI, error) {
	if cfg.AssemblyAIAPIKey == "" {
		return nil, common.ConfigurationError("ASSEMBLYAI_API_KEY is required for the assemblyai backend", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AssemblyAI{
		apiKey:   cfg.AssemblyAIAPIKey,
		baseURL:  assemblyDefaultURL,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		logger:   logger,
		pollWait: 3 * time.Second,
	}, nil
}

func (a *AssemblyAI) Name() string { return constants.BackendAssemblyAI }

func (a *AssemblyAI) Limits() Limits {
	return Limits{MaxUploadBytes: 5 << 30}
}

func (a *AssemblyAI) headers() map[string]string {
	return map[string]string{"Authorization": a.apiKey}
}

func (a *AssemblyAI) Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (*Result, error) {
	start := time.Now()

	uploadURL, err := a.upload(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"audio_url":      uploadURL,
		"speaker_labels": opts.Diarize,
	}
	if opts.Language != "" {
		body["language_code"] = opts.Language
	}
	raw, err := doJSON(ctx, a.client, constants.BackendAssemblyAI,
		http.MethodPost, a.baseURL+"/transcript", a.headers(), body)
	if err != nil {
		return nil, err
	}
	var created assemblyTranscript
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, common.ProviderError("decode assemblyai response", err)
	}

	final, err := a.poll(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Text:         final.Text,
		Language:     final.LanguageCode,
		AudioSeconds: final.AudioDuration,
	}
	for _, u := range final.Utterances {
		res.Segments = append(res.Segments, Segment{
			Start:      float64(u.Start) / 1000,
			End:        float64(u.End) / 1000,
			Speaker:    "SPEAKER_" + u.Speaker,
			Text:       u.Text,
			Confidence: u.Confidence,
		})
	}

	a.logger.Info("provider.assemblyai.ok",
		"transcript_id", final.ID,
		"audio_s", final.AudioDuration,
		"segments", len(res.Segments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (a *AssemblyAI) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", common.StorageError("open audio file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/upload", f)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	raw, err := doRaw(a.client, constants.BackendAssemblyAI, req)
	if err != nil {
		return "", err
	}
	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.UploadURL == "" {
		return "", common.ProviderError("decode assemblyai upload response", err)
	}
	return out.UploadURL, nil
}

func (a *AssemblyAI) poll(ctx context.Context, id string) (*assemblyTranscript, error) {
	for {
		raw, err := doJSON(ctx, a.client, constants.BackendAssemblyAI,
			http.MethodGet, a.baseURL+"/transcript/"+id, a.headers(), nil)
		if err != nil {
			return nil, err
		}
		var t assemblyTranscript
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, common.ProviderError("decode assemblyai poll response", err)
		}
		switch strings.ToLower(t.Status) {
		case "completed":
			return &t, nil
		case "error":
			return nil, common.ProviderError(fmt.Sprintf("assemblyai transcription failed: %s", t.Error), nil)
		}

		select {
		case <-ctx.Done():
			return nil, common.ProviderError("assemblyai poll cancelled", ctx.Err())
		case <-time.After(a.pollWait):
		}
	}
}

// compile-time check
var _ Transcriber = (*AssemblyAI)(nil)

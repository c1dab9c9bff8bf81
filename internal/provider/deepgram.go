package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

const deepgramDefaultURL = "https://api.deepgram.com/v1/listen"

type deepgramResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []struct {
			Start      float64 `json:"start"`
			End        float64 `json:"end"`
			Speaker    int     `json:"speaker"`
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"utterances"`
	} `json:"results"`
}

// Deepgram implements Transcriber using the Deepgram REST API.
type Deepgram struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewDeepgram(cfg common.ProvidersConfig, logger *slog.Logger) (*Deepgram, error) {
	if cfg.DeepgramAPIKey == "" {
		return nil, common.ConfigurationError("DEEPGRAM_API_KEY is required for the deepgram backend", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Deepgram{
		apiKey:  cfg.DeepgramAPIKey,
		model:   "nova-2",
		baseURL: deepgramDefaultURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}, nil
}

func (d *Deepgram) Name() string { return constants.BackendDeepgram }

func (d *Deepgram) Limits() Limits {
	return Limits{MaxUploadBytes: 2 << 30}
}

func (d *Deepgram) Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (*Result, error) {
	start := time.Now()

	f, err := os.Open(audioPath)
	if err != nil {
		return nil, common.StorageError("open audio file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	params := url.Values{}
	params.Set("model", d.model)
	params.Set("smart_format", "true")
	params.Set("punctuate", "true")
	params.Set("utterances", "true")
	if opts.Diarize {
		params.Set("diarize", "true")
	}
	if opts.Language != "" {
		params.Set("language", opts.Language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"?"+params.Encode(), f)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "audio/*")

	raw, err := doRaw(d.client, constants.BackendDeepgram, req)
	if err != nil {
		d.logger.Error("provider.deepgram.error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp deepgramResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.ProviderError("decode deepgram response", err)
	}
	if len(resp.Results.Channels) == 0 || len(resp.Results.Channels[0].Alternatives) == 0 {
		return nil, common.ProviderError("deepgram response has no alternatives", nil)
	}

	res := &Result{
		Text:         resp.Results.Channels[0].Alternatives[0].Transcript,
		AudioSeconds: resp.Metadata.Duration,
	}
	for _, u := range resp.Results.Utterances {
		res.Segments = append(res.Segments, Segment{
			Start:      u.Start,
			End:        u.End,
			Speaker:    fmt.Sprintf("SPEAKER_%02d", u.Speaker),
			Text:       u.Transcript,
			Confidence: u.Confidence,
		})
	}

	d.logger.Info("provider.deepgram.ok",
		"audio_s", strconv.FormatFloat(res.AudioSeconds, 'f', 1, 64),
		"segments", len(res.Segments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// compile-time check
var _ Transcriber = (*Deepgram)(nil)

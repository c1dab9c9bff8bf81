// Package provider normalizes third-party transcription and
// translation services behind two small interfaces. Adapters are
// constructed per call site and injected; nothing in this package
// caches client instances.
package provider

import (
	"context"
)

// Segment is one timed span of recognized or translated speech.
// Start and End are seconds from the beginning of the source.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker,omitempty"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Result is the minimal normalized schema every adapter maps onto.
// Exactly one of AudioSeconds, TokensUsed, and Characters is non-zero,
// matching how the backend bills.
type Result struct {
	Text     string
	Segments []Segment
	Language string

	AudioSeconds float64
	TokensUsed   int64
	Characters   int64
}

// Limits describes the sizing constraints a backend imposes; the
// orchestrator chunks inputs that exceed them.
type Limits struct {
	MaxUploadBytes int64 // audio backends
	TokenBudget    int   // full context window minus prompt overhead
	MaxChunkTokens int   // largest chunk worth sending at once
}

// TranscribeOptions tune a transcription request.
type TranscribeOptions struct {
	Language string // hint, empty means autodetect
	Diarize  bool
}

// TranslateOptions tune a translation request.
type TranslateOptions struct {
	SourceLang string // empty means autodetect
	TargetLang string
}

// Transcriber converts one audio file into a normalized Result.
type Transcriber interface {
	Name() string
	Limits() Limits
	Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (*Result, error)
}

// Translator converts one block of text into a normalized Result.
type Translator interface {
	Name() string
	Limits() Limits
	Translate(ctx context.Context, text string, opts TranslateOptions) (*Result, error)
}

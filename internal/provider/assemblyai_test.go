package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/scribepipe/scribepipe/internal/common"
)

func TestAssemblyAITranscribe(t *testing.T) {
	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/upload"):
			if r.Header.Get("Authorization") != "aa-key" {
				t.Errorf("upload auth = %q", r.Header.Get("Authorization"))
			}
			_, _ = w.Write([]byte(`{"upload_url": "https://cdn.example/upload/abc"}`))

		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/transcript"):
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["audio_url"] != "https://cdn.example/upload/abc" {
				t.Errorf("audio_url = %v", body["audio_url"])
			}
			if body["speaker_labels"] != true {
				t.Errorf("speaker_labels = %v", body["speaker_labels"])
			}
			_, _ = w.Write([]byte(`{"id": "tr_1", "status": "queued"}`))

		case r.Method == http.MethodGet:
			polls++
			if polls < 2 {
				_, _ = w.Write([]byte(`{"id": "tr_1", "status": "processing"}`))
				return
			}
			_, _ = w.Write([]byte(`{
				"id": "tr_1", "status": "completed", "text": "two speakers talking",
				"audio_duration": 30.0, "language_code": "en",
				"utterances": [
					{"start": 0, "end": 15000, "speaker": "A", "text": "two speakers", "confidence": 0.9},
					{"start": 15000, "end": 30000, "speaker": "B", "text": "talking", "confidence": 0.8}
				]
			}`))
		}
	}))
	defer srv.Close()

	a, err := NewAssemblyAI(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewAssemblyAI: %v", err)
	}
	a.baseURL = srv.URL
	a.pollWait = time.Millisecond

	res, err := a.Transcribe(context.Background(), writeAudioFixture(t), TranscribeOptions{Diarize: true})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if polls < 2 {
		t.Errorf("expected at least 2 polls, got %d", polls)
	}
	if res.Text != "two speakers talking" {
		t.Errorf("text = %q", res.Text)
	}
	if res.AudioSeconds != 30 {
		t.Errorf("audio seconds = %f", res.AudioSeconds)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("segments = %d", len(res.Segments))
	}
	if res.Segments[0].End != 15 {
		t.Errorf("segment end = %f, want 15 (milliseconds converted)", res.Segments[0].End)
	}
	if res.Segments[0].Speaker != "SPEAKER_A" {
		t.Errorf("speaker = %q", res.Segments[0].Speaker)
	}
}

func TestAssemblyAIFailedTranscriptIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/upload"):
			_, _ = w.Write([]byte(`{"upload_url": "https://cdn.example/upload/abc"}`))
		case r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"id": "tr_2", "status": "queued"}`))
		default:
			_, _ = w.Write([]byte(`{"id": "tr_2", "status": "error", "error": "audio too noisy"}`))
		}
	}))
	defer srv.Close()

	a, err := NewAssemblyAI(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewAssemblyAI: %v", err)
	}
	a.baseURL = srv.URL
	a.pollWait = time.Millisecond

	_, err = a.Transcribe(context.Background(), writeAudioFixture(t), TranscribeOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if common.KindOf(err) != common.KindProvider {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindProvider)
	}
	if !strings.Contains(err.Error(), "audio too noisy") {
		t.Errorf("provider message not preserved: %v", err)
	}
}

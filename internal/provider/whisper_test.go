package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const whisperFixture = `{
	"text": " The quick brown fox. ",
	"language": "english",
	"duration": 8.2,
	"segments": [
		{"start": 0.0, "end": 4.0, "text": " The quick"},
		{"start": 4.0, "end": 8.2, "text": " brown fox."}
	]
}`

func TestWhisperTranscribe(t *testing.T) {
	var gotAuth, gotModel, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotModel = r.FormValue("model")
		gotFormat = r.FormValue("response_format")
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(whisperFixture))
	}))
	defer srv.Close()

	wh, err := NewWhisper(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewWhisper: %v", err)
	}
	wh.baseURL = srv.URL

	res, err := wh.Transcribe(context.Background(), writeAudioFixture(t), TranscribeOptions{})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if gotAuth != "Bearer oa-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotModel != "whisper-1" {
		t.Errorf("model = %q", gotModel)
	}
	if gotFormat != "verbose_json" {
		t.Errorf("response_format = %q", gotFormat)
	}

	if res.Text != "The quick brown fox." {
		t.Errorf("text = %q", res.Text)
	}
	if res.AudioSeconds != 8.2 {
		t.Errorf("audio seconds = %f", res.AudioSeconds)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("segments = %d", len(res.Segments))
	}
	if res.Segments[1].Text != "brown fox." {
		t.Errorf("segment text not trimmed: %q", res.Segments[1].Text)
	}
}

func TestWhisperLimits(t *testing.T) {
	wh, err := NewWhisper(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewWhisper: %v", err)
	}
	if wh.Limits().MaxUploadBytes != 25<<20 {
		t.Errorf("MaxUploadBytes = %d", wh.Limits().MaxUploadBytes)
	}
}

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scribepipe/scribepipe/internal/common"
)

func testConfig() common.ProvidersConfig {
	return common.ProvidersConfig{
		DeepgramAPIKey:   "dg-key",
		OpenAIAPIKey:     "oa-key",
		OpenAIBaseURL:    "https://api.openai.com/v1",
		AssemblyAIAPIKey: "aa-key",
		GoogleAPIKey:     "g-key",
		DeepSeekAPIKey:   "ds-key",
		DeepSeekBaseURL:  "https://api.deepseek.com/v1",
		RequestTimeout:   10 * time.Second,
	}
}

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(p, []byte("fake-audio-bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

const deepgramFixture = `{
	"metadata": {"duration": 12.5},
	"results": {
		"channels": [{"alternatives": [{"transcript": "hello world", "confidence": 0.97}]}],
		"utterances": [
			{"start": 0.0, "end": 6.1, "speaker": 0, "transcript": "hello", "confidence": 0.98},
			{"start": 6.1, "end": 12.5, "speaker": 1, "transcript": "world", "confidence": 0.95}
		]
	}
}`

func TestDeepgramTranscribe(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(deepgramFixture))
	}))
	defer srv.Close()

	d, err := NewDeepgram(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewDeepgram: %v", err)
	}
	d.baseURL = srv.URL

	res, err := d.Transcribe(context.Background(), writeAudioFixture(t), TranscribeOptions{Diarize: true, Language: "en"})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if gotAuth != "Token dg-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	for _, param := range []string{"model=nova-2", "diarize=true", "language=en", "utterances=true"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("query missing %s: %s", param, gotQuery)
		}
	}

	if res.Text != "hello world" {
		t.Errorf("text = %q", res.Text)
	}
	if res.AudioSeconds != 12.5 {
		t.Errorf("audio seconds = %f", res.AudioSeconds)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("segments = %d", len(res.Segments))
	}
	if res.Segments[0].Speaker != "SPEAKER_00" || res.Segments[1].Speaker != "SPEAKER_01" {
		t.Errorf("speakers = %s, %s", res.Segments[0].Speaker, res.Segments[1].Speaker)
	}
	if res.TokensUsed != 0 || res.Characters != 0 {
		t.Errorf("audio result must not carry token or character quantities")
	}
}

func TestDeepgramErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		want   common.Kind
	}{
		{http.StatusUnauthorized, common.KindConfiguration},
		{http.StatusForbidden, common.KindConfiguration},
		{http.StatusTooManyRequests, common.KindProvider},
		{http.StatusInternalServerError, common.KindProvider},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error": "nope"}`))
		}))

		d, err := NewDeepgram(testConfig(), nil)
		if err != nil {
			t.Fatalf("NewDeepgram: %v", err)
		}
		d.baseURL = srv.URL

		_, err = d.Transcribe(context.Background(), writeAudioFixture(t), TranscribeOptions{})
		if err == nil {
			t.Errorf("status %d: expected error", tc.status)
		} else if common.KindOf(err) != tc.want {
			t.Errorf("status %d: kind = %s, want %s", tc.status, common.KindOf(err), tc.want)
		}
		srv.Close()
	}
}

func TestDeepgramMissingKeyIsConfigError(t *testing.T) {
	cfg := testConfig()
	cfg.DeepgramAPIKey = ""
	_, err := NewDeepgram(cfg, nil)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if common.KindOf(err) != common.KindConfiguration {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindConfiguration)
	}
}


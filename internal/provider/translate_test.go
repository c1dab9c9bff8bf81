package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scribepipe/scribepipe/internal/common"
)

func TestGoogleTranslate(t *testing.T) {
	var gotBody map[string]any
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"translations": [{"translatedText": "hola mundo", "detectedSourceLanguage": "en"}]}}`))
	}))
	defer srv.Close()

	g, err := NewGoogleTranslate(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewGoogleTranslate: %v", err)
	}
	g.baseURL = srv.URL

	res, err := g.Translate(context.Background(), "hello world", TranslateOptions{TargetLang: "es"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if gotKey != "g-key" {
		t.Errorf("api key = %q", gotKey)
	}
	if gotBody["q"] != "hello world" || gotBody["target"] != "es" || gotBody["format"] != "text" {
		t.Errorf("request body = %v", gotBody)
	}
	if res.Text != "hola mundo" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Language != "en" {
		t.Errorf("detected language = %q", res.Language)
	}
	if res.Characters != int64(len("hello world")) {
		t.Errorf("characters = %d", res.Characters)
	}
	if res.TokensUsed != 0 || res.AudioSeconds != 0 {
		t.Errorf("character-billed result must not carry other quantities")
	}
}

func TestChatTranslatorWire(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "  bonjour le monde  "}}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25}
		}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.DeepSeekBaseURL = srv.URL
	ds, err := NewDeepSeek(cfg, nil)
	if err != nil {
		t.Fatalf("NewDeepSeek: %v", err)
	}

	res, err := ds.Translate(context.Background(), "hello world", TranslateOptions{SourceLang: "en", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if gotAuth != "Bearer ds-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "deepseek-chat" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Content != "hello world" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
	if res.Text != "bonjour le monde" {
		t.Errorf("text = %q", res.Text)
	}
	if res.TokensUsed != 25 {
		t.Errorf("tokens = %d", res.TokensUsed)
	}
}

func TestTranslateRequiresTargetLanguage(t *testing.T) {
	g, err := NewGoogleTranslate(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewGoogleTranslate: %v", err)
	}
	if _, err := g.Translate(context.Background(), "text", TranslateOptions{}); common.KindOf(err) != common.KindValidation {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindValidation)
	}

	oa, err := NewOpenAITranslator(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewOpenAITranslator: %v", err)
	}
	if _, err := oa.Translate(context.Background(), "text", TranslateOptions{}); common.KindOf(err) != common.KindValidation {
		t.Errorf("kind = %s, want %s", common.KindOf(err), common.KindValidation)
	}
}

func TestTranslatorLimits(t *testing.T) {
	oa, _ := NewOpenAITranslator(testConfig(), nil)
	if oa.Limits().TokenBudget != 118000 || oa.Limits().MaxChunkTokens != 15000 {
		t.Errorf("openai limits = %+v", oa.Limits())
	}
	ds, _ := NewDeepSeek(testConfig(), nil)
	if ds.Limits().MaxChunkTokens != 500 {
		t.Errorf("deepseek limits = %+v", ds.Limits())
	}
}

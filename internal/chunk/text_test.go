package chunk

import (
	"strings"
	"testing"
)

// wordCounter charges one token per whitespace-separated word, which
// keeps the arithmetic in tests obvious.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// runeCounter charges one token per rune, for scripts without spaces.
type runeCounter struct{}

func (runeCounter) Count(text string) int {
	return len([]rune(text))
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestSplitUnderBudgetReturnsWholeText(t *testing.T) {
	s := NewTextSplitter(wordCounter{}, nil)
	text := "One sentence. Another sentence."

	chunks, err := s.Split(text, "en", 100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("text altered: %q", chunks[0].Text)
	}
}

func TestSplitRespectsSentenceBoundaries(t *testing.T) {
	s := NewTextSplitter(wordCounter{}, nil)
	text := "The first sentence has six words here. Second one is shorter. A third sentence follows now! Was that a question? Final statement ends it."

	chunks, err := s.Split(text, "en", 10)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Tokens > 10 {
			t.Errorf("chunk %d has %d tokens, budget 10", i, c.Tokens)
		}
		if c.Oversized {
			t.Errorf("chunk %d unexpectedly flagged oversized", i)
		}
		// no chunk ends mid-sentence
		last := c.Text[len(c.Text)-1]
		if last != '.' && last != '!' && last != '?' {
			t.Errorf("chunk %d ends mid-sentence: %q", i, c.Text)
		}
	}

	var joined []string
	for _, c := range chunks {
		joined = append(joined, c.Text)
	}
	if normalizeWS(strings.Join(joined, " ")) != normalizeWS(text) {
		t.Errorf("concatenated chunks do not reconstruct the input")
	}
}

func TestSplitLargeDocumentProducesMultipleChunks(t *testing.T) {
	s := NewTextSplitter(wordCounter{}, nil)
	// ~50k tokens against a 13k budget
	sentence := "This sentence contributes exactly eight words total. "
	text := strings.Repeat(sentence, 6250)

	chunks, err := s.Split(text, "en", 13000)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Tokens > 13000 {
			t.Errorf("chunk %d exceeds budget: %d tokens", i, c.Tokens)
		}
	}
}

func TestSplitOversizedUnitFlaggedNotTruncated(t *testing.T) {
	s := NewTextSplitter(wordCounter{}, nil)
	giant := strings.TrimSpace(strings.Repeat("word ", 50)) + "."
	text := "Short lead-in. " + giant + " Short tail."

	chunks, err := s.Split(text, "en", 10)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	found := false
	for _, c := range chunks {
		if c.Oversized {
			found = true
			if c.Text != giant {
				t.Errorf("oversized unit was altered")
			}
		}
	}
	if !found {
		t.Fatal("expected an oversized chunk")
	}
}

func TestSplitScriptDelimiters(t *testing.T) {
	s := NewTextSplitter(runeCounter{}, nil)
	text := "今日は良い天気です。明日は雨が降るでしょう。週末は晴れるといいですね。"

	chunks, err := s.Split(text, "ja", 15)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if strings.Join(collectText(chunks), "") != text {
		t.Errorf("script chunks do not reconstruct the input exactly")
	}
	for i, c := range chunks {
		if !strings.HasSuffix(c.Text, "。") {
			t.Errorf("chunk %d does not end at a boundary: %q", i, c.Text)
		}
	}
}

func TestSplitRejectsBadInput(t *testing.T) {
	s := NewTextSplitter(wordCounter{}, nil)

	if _, err := s.Split("some text", "en", 0); err == nil {
		t.Error("expected error for zero budget")
	}
	if _, err := s.Split("   ", "en", 10); err == nil {
		t.Error("expected error for blank text")
	}
}

func TestHeuristicCounterScripts(t *testing.T) {
	c := heuristicCounter{}

	latin := strings.Repeat("abcd", 25) // 100 chars
	if got := c.Count(latin); got != 25 {
		t.Errorf("latin count = %d, want 25", got)
	}
	cjk := strings.Repeat("日本語だ", 25) // 100 runes
	if got := c.Count(cjk); got != 50 {
		t.Errorf("cjk count = %d, want 50", got)
	}
}

func collectText(chunks []TextChunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}

package chunk

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/pkoukk/tiktoken-go"

	"github.com/scribepipe/scribepipe/internal/common"
)

// TokenCounter reports how many tokens a string costs against a model
// budget.
type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// heuristicCounter approximates token cost by character class when no
// BPE table is available for the model. Dense scripts (CJK, Thai)
// average about two characters per token, Latin text about four.
type heuristicCounter struct{}

func (heuristicCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	dense := 0
	total := 0
	for _, r := range text {
		total++
		if isDenseScript(r) {
			dense++
		}
	}
	per := 4
	if dense*2 > total {
		per = 2
	}
	n := total / per
	if n == 0 {
		n = 1
	}
	return n
}

func isDenseScript(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Thai, r) ||
		unicode.Is(unicode.Hangul, r)
}

// NewTokenCounter returns a tiktoken-backed counter for the model, or
// the heuristic counter when the model has no known encoding.
func NewTokenCounter(model string) TokenCounter {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		slog.Debug("chunk.text.no_encoding", "model", model, "error", err)
		return heuristicCounter{}
	}
	return tiktokenCounter{enc: enc}
}

// TextChunk is one piece of a split document, in document order.
type TextChunk struct {
	Text      string
	Tokens    int
	Oversized bool // a single boundary unit exceeded the budget on its own
}

var sentenceRe = regexp.MustCompile(`[^.!?]*[.!?]+`)

// boundary delimiter sets for scripts that do not terminate sentences
// with Latin punctuation. The delimiter stays attached to its unit.
var scriptDelims = map[string][]rune{
	"th": {' ', '\n', '。', '．', 'ฯ', 'ๆ'},
	"zh": {'。', '．', '！', '？', '\n'},
	"ja": {'。', '．', '！', '？', '\n'},
}

// TextSplitter cuts a document into chunks that each fit a token
// budget, never breaking inside a sentence or script boundary unit.
type TextSplitter struct {
	counter TokenCounter
	logger  *slog.Logger
}

func NewTextSplitter(counter TokenCounter, logger *slog.Logger) *TextSplitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextSplitter{counter: counter, logger: logger}
}

// Split returns ordered chunks whose token counts stay at or under
// budget. The caller passes a budget already reduced by its prompt
// overhead and expected response size. A unit that alone exceeds the
// budget is emitted as its own chunk flagged Oversized, never
// truncated.
func (s *TextSplitter) Split(text, lang string, budget int) ([]TextChunk, error) {
	if budget <= 0 {
		return nil, common.InvalidInputError("token budget must be positive", nil)
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.InvalidInputError("text is empty", nil)
	}

	if s.counter.Count(text) <= budget {
		return []TextChunk{{Text: text, Tokens: s.counter.Count(text)}}, nil
	}

	units, joiner := boundaryUnits(text, lang)

	var (
		chunks []TextChunk
		buf    []string
		used   int
	)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		t := strings.Join(buf, joiner)
		chunks = append(chunks, TextChunk{Text: t, Tokens: s.counter.Count(t)})
		buf = buf[:0]
		used = 0
	}

	for _, u := range units {
		n := s.counter.Count(u)
		if n > budget {
			flush()
			s.logger.Warn("chunk.text.oversized_unit", "tokens", n, "budget", budget)
			chunks = append(chunks, TextChunk{Text: u, Tokens: n, Oversized: true})
			continue
		}
		if used+n > budget {
			flush()
		}
		buf = append(buf, u)
		used += n
	}
	flush()

	s.logger.Debug("chunk.text.split", "lang", lang, "budget", budget, "chunks", len(chunks))
	return chunks, nil
}

// boundaryUnits cuts text into sentence-like units and reports the
// joiner that reassembles them without losing content.
func boundaryUnits(text, lang string) ([]string, string) {
	if delims, ok := scriptDelims[strings.ToLower(lang)]; ok {
		return splitOnRunes(text, delims), ""
	}

	var units []string
	rest := text
	for _, m := range sentenceRe.FindAllString(text, -1) {
		units = append(units, strings.TrimSpace(m))
	}
	if loc := sentenceRe.FindAllStringIndex(text, -1); len(loc) > 0 {
		rest = text[loc[len(loc)-1][1]:]
	}
	if tail := strings.TrimSpace(rest); tail != "" && len(units) > 0 {
		units = append(units, tail)
	}
	if len(units) == 0 {
		units = []string{strings.TrimSpace(text)}
	}
	return units, " "
}

func splitOnRunes(text string, delims []rune) []string {
	isDelim := make(map[rune]struct{}, len(delims))
	for _, d := range delims {
		isDelim[d] = struct{}{}
	}
	var units []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if _, ok := isDelim[r]; ok {
			units = append(units, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		units = append(units, b.String())
	}
	return units
}

package pipeline

import (
	"fmt"
	"strings"

	"github.com/scribepipe/scribepipe/internal/provider"
)

// WriteSRT renders segments as SubRip text. Segments are assumed to be
// in playback order with absolute timestamps.
func WriteSRT(segments []provider.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(s.Start), srtTimestamp(s.End))
		if s.Speaker != "" {
			fmt.Fprintf(&b, "[%s] ", s.Speaker)
		}
		b.WriteString(strings.TrimSpace(s.Text))
		b.WriteString("\n\n")
	}
	return b.String()
}

func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(seconds*1000 + 0.5)
	h := ms / 3_600_000
	m := ms % 3_600_000 / 60_000
	s := ms % 60_000 / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}

package chunk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/scribepipe/scribepipe/internal/common"
)

// stubRunner fakes ffmpeg/ffprobe. It answers probe calls with a fixed
// duration and materializes segment files instead of cutting audio.
type stubRunner struct {
	duration  float64
	failProbe bool
	failSplit bool
	calls     []string
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))

	if strings.Contains(name, "ffprobe") {
		if r.failProbe {
			return nil, []byte("invalid data found"), fmt.Errorf("exit status 1")
		}
		return []byte(fmt.Sprintf("%f\n", r.duration)), nil, nil
	}

	if r.failSplit {
		return nil, []byte("conversion failed"), fmt.Errorf("exit status 1")
	}

	// compression call writes a single output file
	out := args[len(args)-1]
	if !strings.Contains(out, "%") {
		return nil, nil, os.WriteFile(out, []byte("compressed"), 0o644)
	}

	// segment call: derive chunk count from duration / segment_time
	var segTime float64
	for i, a := range args {
		if a == "-segment_time" && i+1 < len(args) {
			segTime, _ = strconv.ParseFloat(args[i+1], 64)
		}
	}
	n := int(r.duration / segTime)
	if float64(n)*segTime < r.duration {
		n++
	}
	for i := 0; i < n; i++ {
		if err := os.WriteFile(fmt.Sprintf(out, i), []byte("chunk"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func writeTempAudio(t *testing.T, size int) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "input.mp3")
	if err := os.WriteFile(p, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return p
}

func newTestSplitter(t *testing.T, r Runner, thresholdMB int) *AudioSplitter {
	t.Helper()
	return NewAudioSplitter(r, common.MediaConfig{
		FFmpegPath:       "ffmpeg",
		FFprobePath:      "ffprobe",
		WorkDir:          t.TempDir(),
		ChunkThresholdMB: thresholdMB,
	}, nil)
}

func TestSplitUnderLimitReturnsSingleChunk(t *testing.T) {
	path := writeTempAudio(t, 1<<20)
	r := &stubRunner{duration: 300}
	s := newTestSplitter(t, r, 20)

	res, err := s.Split(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	defer res.Cleanup()

	if len(res.Chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(res.Chunks))
	}
	if res.Chunks[0].Path != path {
		t.Errorf("single chunk should reference the original file, got %s", res.Chunks[0].Path)
	}
	if res.Compressed {
		t.Errorf("under-limit input must not be re-encoded")
	}
	if res.Chunks[0].Duration != 300 {
		t.Errorf("duration = %f, want 300", res.Chunks[0].Duration)
	}
}

func TestSplitOversizedProducesOrderedChunks(t *testing.T) {
	// 45 minutes at well over the limit
	path := writeTempAudio(t, 64<<20)
	r := &stubRunner{duration: 45 * 60}
	s := newTestSplitter(t, r, 20)

	res, err := s.Split(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	defer res.Cleanup()

	if len(res.Chunks) < 3 {
		t.Fatalf("expected at least 3 chunks for a 45-minute file, got %d", len(res.Chunks))
	}
	if !res.Compressed {
		t.Errorf("oversized input should be downmixed first")
	}

	var total float64
	for i, c := range res.Chunks {
		if c.Index != i {
			t.Errorf("chunk %d has index %d", i, c.Index)
		}
		if i > 0 && c.Start <= res.Chunks[i-1].Start {
			t.Errorf("chunk %d does not start after chunk %d", i, i-1)
		}
		if c.Duration <= 0 {
			t.Errorf("chunk %d has non-positive duration %f", i, c.Duration)
		}
		if c.Duration > maxChunkMinutes*60+1 {
			t.Errorf("chunk %d duration %f exceeds the clamp", i, c.Duration)
		}
		total += c.Duration
	}
	if diff := total - res.TotalDuration; diff > 1 || diff < -1 {
		t.Errorf("chunk durations sum to %f, want %f", total, res.TotalDuration)
	}

	// downmix happens exactly once, before segmenting
	downmixes := 0
	for _, c := range r.calls {
		if strings.Contains(c, "-ac 1 -ar 16000") {
			downmixes++
		}
	}
	if downmixes != 1 {
		t.Errorf("expected exactly one downmix call, got %d", downmixes)
	}
}

func TestSplitChunkSecondsClamped(t *testing.T) {
	// tiny bytes-per-minute forces the upper clamp
	if got := chunkSeconds(1<<20, 120*60, 20<<20); got != maxChunkMinutes*60 {
		t.Errorf("chunkSeconds = %f, want clamp at %d", got, maxChunkMinutes*60)
	}
	// huge bytes-per-minute forces the lower clamp
	if got := chunkSeconds(1<<30, 10*60, 20<<20); got != minChunkMinutes*60 {
		t.Errorf("chunkSeconds = %f, want clamp at %d", got, minChunkMinutes*60)
	}
}

func TestSplitBackendCapTightensThreshold(t *testing.T) {
	// 30 MB input is under the configured 40 MB threshold but over a
	// 25 MB backend upload cap, so it must still be split.
	path := writeTempAudio(t, 30<<20)
	r := &stubRunner{duration: 45 * 60}
	s := newTestSplitter(t, r, 40)

	res, err := s.Split(context.Background(), path, 25<<20)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	defer res.Cleanup()

	if !res.Compressed {
		t.Fatalf("input over the backend cap should be split, got a single chunk")
	}
	if len(res.Chunks) < 2 {
		t.Errorf("expected multiple chunks, got %d", len(res.Chunks))
	}

	// a cap looser than the configured threshold changes nothing
	r2 := &stubRunner{duration: 45 * 60}
	s2 := newTestSplitter(t, r2, 40)
	res2, err := s2.Split(context.Background(), path, 2<<30)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	defer res2.Cleanup()
	if res2.Compressed || len(res2.Chunks) != 1 {
		t.Errorf("under-threshold input must stay a single chunk, got %d (compressed=%v)",
			len(res2.Chunks), res2.Compressed)
	}
}

func TestSplitProbeFailureIsValidationError(t *testing.T) {
	path := writeTempAudio(t, 1<<20)
	r := &stubRunner{failProbe: true}
	s := newTestSplitter(t, r, 20)

	_, err := s.Split(context.Background(), path, 0)
	if err == nil {
		t.Fatal("expected error for unreadable media")
	}
	if common.KindOf(err) != common.KindValidation {
		t.Errorf("error kind = %s, want %s", common.KindOf(err), common.KindValidation)
	}
}

func TestSplitCleansUpOnSegmentFailure(t *testing.T) {
	path := writeTempAudio(t, 64<<20)
	work := t.TempDir()
	r := &stubRunner{duration: 45 * 60, failSplit: true}
	s := NewAudioSplitter(r, common.MediaConfig{
		FFmpegPath: "ffmpeg", FFprobePath: "ffprobe",
		WorkDir: work, ChunkThresholdMB: 20,
	}, nil)

	if _, err := s.Split(context.Background(), path, 0); err == nil {
		t.Fatal("expected error when segmenting fails")
	}
	entries, err := os.ReadDir(work)
	if err != nil {
		t.Fatalf("read work dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp files left behind after failure: %d entries", len(entries))
	}
}

package chunk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scribepipe/scribepipe/internal/common"
)

// compressionRatio estimates how much smaller a mono 16kHz re-encode
// comes out relative to the source. Measured on typical meeting
// recordings; deliberately conservative so chunks land under the
// provider limit.
const compressionRatio = 0.35

const (
	minChunkMinutes = 2
	maxChunkMinutes = 8
)

// AudioChunk is one piece of a split recording, in playback order.
type AudioChunk struct {
	Path     string
	Index    int
	Start    float64 // seconds from the beginning of the source
	Duration float64 // seconds
}

// SplitResult holds ordered chunks plus a cleanup handle for the
// temporary files behind them. Cleanup is safe to call on every exit
// path, including when the input needed no splitting.
type SplitResult struct {
	Chunks        []AudioChunk
	TotalDuration float64
	Compressed    bool

	workDir string
}

// Cleanup removes all temporary files produced by the split.
func (r *SplitResult) Cleanup() {
	if r.workDir != "" {
		_ = os.RemoveAll(r.workDir)
	}
}

// AudioSplitter turns an oversized recording into ordered chunks that
// each fit under the provider upload limit. The source file is never
// modified.
type AudioSplitter struct {
	runner         Runner
	ffmpeg         string
	ffprobe        string
	workDir        string
	thresholdBytes int64
	logger         *slog.Logger
}

func NewAudioSplitter(runner Runner, cfg common.MediaConfig, logger *slog.Logger) *AudioSplitter {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := int64(cfg.ChunkThresholdMB) << 20
	if threshold <= 0 {
		threshold = 20 << 20
	}
	return &AudioSplitter{
		runner:         runner,
		ffmpeg:         cfg.FFmpegPath,
		ffprobe:        cfg.FFprobePath,
		workDir:        cfg.WorkDir,
		thresholdBytes: threshold,
		logger:         logger,
	}
}

// Split probes the source, and either returns it as a single chunk
// (when already under the limit) or downmixes once and cuts the result
// into consecutive windows. Chunks come back in playback order; a
// trailing window shorter than the others is kept, never dropped.
// maxBytes is the backend's hard upload cap; when positive and tighter
// than the configured threshold it wins, so every chunk fits what the
// provider will actually accept.
func (s *AudioSplitter) Split(ctx context.Context, path string, maxBytes int64) (*SplitResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, common.StorageError("stat input file", err)
	}

	threshold := s.thresholdBytes
	if maxBytes > 0 && maxBytes < threshold {
		threshold = maxBytes
	}

	duration, err := s.probeDuration(ctx, path)
	if err != nil {
		return nil, err
	}

	if info.Size() <= threshold {
		s.logger.Debug("chunk.audio.single",
			"path", filepath.Base(path), "size_bytes", info.Size(), "duration_s", duration)
		return &SplitResult{
			Chunks:        []AudioChunk{{Path: path, Index: 0, Start: 0, Duration: duration}},
			TotalDuration: duration,
		}, nil
	}

	start := time.Now()
	work, err := os.MkdirTemp(s.workDir, "audiochunks-")
	if err != nil {
		return nil, common.StorageError("create chunk work dir", err)
	}
	res := &SplitResult{TotalDuration: duration, Compressed: true, workDir: work}

	compressed := filepath.Join(work, "compressed.mp3")
	if _, stderr, err := s.runner.Run(ctx, s.ffmpeg,
		"-y", "-i", path, "-ac", "1", "-ar", "16000", "-b:a", "64k", compressed,
	); err != nil {
		res.Cleanup()
		return nil, common.InvalidInputError(
			fmt.Sprintf("downmix audio: %s", truncate(string(stderr), 512)), err)
	}

	chunkSecs := chunkSeconds(info.Size(), duration, threshold)
	pattern := filepath.Join(work, "chunk_%04d.mp3")
	if _, stderr, err := s.runner.Run(ctx, s.ffmpeg,
		"-y", "-i", compressed,
		"-f", "segment", "-segment_time", strconv.FormatFloat(chunkSecs, 'f', 0, 64),
		"-c", "copy", pattern,
	); err != nil {
		res.Cleanup()
		return nil, common.InvalidInputError(
			fmt.Sprintf("segment audio: %s", truncate(string(stderr), 512)), err)
	}

	chunks, err := collectChunks(work, duration, chunkSecs)
	if err != nil {
		res.Cleanup()
		return nil, err
	}
	res.Chunks = chunks

	s.logger.Info("chunk.audio.split",
		"path", filepath.Base(path),
		"size_bytes", info.Size(),
		"duration_s", duration,
		"chunk_s", chunkSecs,
		"chunks", len(chunks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// chunkSeconds derives the window length from how many compressed
// bytes a minute of this particular file costs, clamped so windows
// stay between 2 and 8 minutes.
func chunkSeconds(sizeBytes int64, duration float64, threshold int64) float64 {
	minutes := duration / 60
	if minutes <= 0 {
		return minChunkMinutes * 60
	}
	bytesPerMinute := float64(sizeBytes) / minutes * compressionRatio
	chunkMinutes := float64(threshold) / bytesPerMinute
	if chunkMinutes < minChunkMinutes {
		chunkMinutes = minChunkMinutes
	}
	if chunkMinutes > maxChunkMinutes {
		chunkMinutes = maxChunkMinutes
	}
	return chunkMinutes * 60
}

func (s *AudioSplitter) probeDuration(ctx context.Context, path string) (float64, error) {
	out, stderr, err := s.runner.Run(ctx, s.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, common.InvalidInputError(
			fmt.Sprintf("probe media duration: %s", truncate(string(stderr), 512)), err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || d <= 0 {
		return 0, common.InvalidInputError("media file has no readable duration", err)
	}
	return d, nil
}

func collectChunks(dir string, total, chunkSecs float64) ([]AudioChunk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.StorageError("list chunk dir", err)
	}
	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "chunk_") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, common.NewAppError(common.KindInternal, "segmenting produced no chunks", nil)
	}
	sort.Strings(paths)

	chunks := make([]AudioChunk, 0, len(paths))
	for i, p := range paths {
		d := chunkSecs
		if rem := total - float64(i)*chunkSecs; rem < d {
			d = rem
		}
		chunks = append(chunks, AudioChunk{
			Path:     p,
			Index:    i,
			Start:    float64(i) * chunkSecs,
			Duration: d,
		})
	}
	return chunks, nil
}

package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Transcribe runs the whisper.cpp CLI against audioPath and returns the full
// transcript text. The model id is assumed valid; the orchestrator checks it
// against the catalog before any stage starts.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, modelID string) (string, error) {
	engine, err := t.cache.Acquire(ctx, modelID)
	if err != nil {
		return "", err
	}

	wavPath, err := t.normalizeAudio(ctx, audioPath)
	if err != nil {
		return "", domain.WrapErr(domain.KindTranscription, err, "normalize audio %s", filepath.Base(audioPath))
	}
	defer t.cleanupTempFile(ctx, wavPath)

	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	t.logger.Info(ctx, "Starting transcription (model %s, %d threads): %s",
		engine.ID, t.cfg.Whisper.Threads, audioPath)

	// Whisper arguments
	// -m: Model path
	// -f: Input audio file
	// -oj: Emit JSON with timed segments
	// -l: Language ("auto" lets whisper detect)
	// -t: Number of threads
	// --output-file: Output file prefix
	args := []string{
		"-m", engine.ModelPath,
		"-f", wavPath,
		"-oj",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", domain.WrapErr(domain.KindTranscription, err, "whisper transcribe")
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", domain.WrapErr(domain.KindTranscription, err, "read whisper output")
	}
	defer t.cleanupTempFile(ctx, jsonPath)

	transcript, err := parseTranscription(data)
	if err != nil {
		return "", domain.WrapErr(domain.KindTranscription, err, "parse whisper output")
	}

	t.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

// whisperOutput mirrors the JSON the whisper.cpp CLI writes with -oj.
type whisperOutput struct {
	Transcription []whisperSegment `json:"transcription"`
}

type whisperSegment struct {
	Text    string `json:"text"`
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
}

// parseTranscription joins the timed segments, in temporal order, into one
// whitespace-trimmed transcript string.
func parseTranscription(data []byte) (string, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unmarshal segments: %w", err)
	}

	segments := make([]whisperSegment, len(out.Transcription))
	copy(segments, out.Transcription)
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Offsets.From < segments[j].Offsets.From
	})

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}

	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

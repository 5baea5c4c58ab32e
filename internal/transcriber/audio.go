package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// normalizeAudio converts the input recording to 16kHz mono WAV, the format
// whisper.cpp expects. Uploads arrive as mp3/m4a/webm as well, so every
// input goes through the same conversion.
func (t *implTranscriber) normalizeAudio(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_norm.wav"

	t.logger.Debug(ctx, "Normalizing audio: %s", audioPath)

	// FFmpeg arguments
	// -i: Input file
	// -vn: Drop any video stream
	// -ar 16000: Sample rate 16kHz
	// -ac 1: Mono channel
	// -c:a pcm_s16le: PCM 16-bit little-endian
	// -y: Overwrite output file if exists
	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg normalize: %w", err)
	}

	return wavPath, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (t *implTranscriber) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

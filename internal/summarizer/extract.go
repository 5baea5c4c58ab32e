package summarizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	taggedFence = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	plainFence  = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// extractJSON pulls the JSON object out of a provider response that may be
// raw JSON, JSON inside a ```json fence, or JSON inside an untagged fence.
// Candidates are tried in that fence-first order; the first one that is
// valid JSON wins.
func extractJSON(raw string) (string, error) {
	var candidates []string
	if m := taggedFence.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := plainFence.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, raw)

	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		if json.Valid([]byte(trimmed)) {
			return trimmed, nil
		}
	}

	return "", fmt.Errorf("no parseable JSON in response (%d bytes)", len(raw))
}

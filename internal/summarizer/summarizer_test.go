package summarizer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
	"github.com/MedDash99/meeting-summarizer/internal/logger"
)

func newTestSummarizer(generate func(ctx context.Context, transcript string) (string, error)) *implSummarizer {
	s := New("test-key", "gemini-2.5-flash", logger.New("error")).(*implSummarizer)
	s.generate = generate
	return s
}

const summaryBody = `{
	"title": "Q3 Planning",
	"summary": "The team agreed on the Q3 roadmap.",
	"participants": [{"name": "Dana", "role": "lead"}],
	"key_points": ["roadmap", "headcount"],
	"decisions": null,
	"action_items": null
}`

// TestSummarizeResponseShapes verifies that raw JSON, a json-tagged fence,
// and an untagged fence all produce the identical parsed summary.
func TestSummarizeResponseShapes(t *testing.T) {
	shapes := map[string]string{
		"raw":            summaryBody,
		"tagged fence":   "```json\n" + summaryBody + "\n```",
		"untagged fence": "```\n" + summaryBody + "\n```",
	}

	var reference *domain.MeetingSummary
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			s := newTestSummarizer(func(ctx context.Context, transcript string) (string, error) {
				return body, nil
			})

			got, err := s.Summarize(context.Background(), "the transcript")
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got.Title != "Q3 Planning" {
				t.Errorf("title = %q", got.Title)
			}
			if got.Transcript != "the transcript" {
				t.Errorf("transcript = %q, want the input transcript", got.Transcript)
			}
			if reference == nil {
				reference = got
			} else if !reflect.DeepEqual(got, reference) {
				t.Errorf("parsed summary differs across response shapes:\n%+v\n%+v", got, reference)
			}
		})
	}
}

func TestSummarizeAbsentFieldsStayNil(t *testing.T) {
	s := newTestSummarizer(func(ctx context.Context, transcript string) (string, error) {
		return `{"title": "T", "summary": "S"}`, nil
	})

	got, err := s.Summarize(context.Background(), "x")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.Participants != nil || got.KeyPoints != nil || got.Decisions != nil || got.ActionItems != nil {
		t.Errorf("absent fields should stay nil, got %+v", got)
	}
}

func TestSummarizeParseFailure(t *testing.T) {
	s := newTestSummarizer(func(ctx context.Context, transcript string) (string, error) {
		return "I could not produce JSON, sorry.", nil
	})

	_, err := s.Summarize(context.Background(), "x")
	if domain.KindOf(err) != domain.KindSummarizeParse {
		t.Errorf("error kind = %s, want %s", domain.KindOf(err), domain.KindSummarizeParse)
	}
}

func TestSummarizeTransportFailure(t *testing.T) {
	s := newTestSummarizer(func(ctx context.Context, transcript string) (string, error) {
		return "", errors.New("connection refused")
	})

	_, err := s.Summarize(context.Background(), "x")
	if domain.KindOf(err) != domain.KindSummarizeTransport {
		t.Errorf("error kind = %s, want %s", domain.KindOf(err), domain.KindSummarizeTransport)
	}
}

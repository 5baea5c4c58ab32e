package summarizer

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

const summaryPrompt = `You are a meeting summarization assistant. Analyze the meeting transcript and extract structured information as a JSON object.

Instructions:
- Title: a concise, descriptive title for the meeting based on its main topic(s)
- Summary: an executive summary (2-4 sentences) capturing purpose, outcomes, and context
- Participants: names and roles if identifiable; use null for a name that is not clearly stated; null for the whole field if this is a monologue
- Key points: the substantive discussion topics; null if none can be extracted
- Decisions: decisions made, each with the context or reasoning behind it; null if none were made
- Action items: tasks assigned, with assignee and deadline when mentioned; null if none were assigned

Only include information explicitly stated or clearly implied in the transcript. Use null for optional fields when the information is not available. Do not fabricate anything.`

// Summarize sends the transcript to Gemini and parses the structured
// response into a MeetingSummary. Transport failures and parse failures
// carry distinct error kinds so callers can tell them apart.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (*domain.MeetingSummary, error) {
	raw, err := s.generate(ctx, transcript)
	if err != nil {
		if domain.KindOf(err) != "" {
			return nil, err
		}
		return nil, domain.WrapErr(domain.KindSummarizeTransport, err, "summarization request")
	}

	payload, err := extractJSON(raw)
	if err != nil {
		return nil, domain.WrapErr(domain.KindSummarizeParse, err, "extract summary payload")
	}

	var summary domain.MeetingSummary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, domain.WrapErr(domain.KindSummarizeParse, err, "decode summary payload")
	}

	summary.Transcript = transcript
	return &summary, nil
}

// callGemini performs one structured-output request. No retries: retry
// policy belongs to the caller.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", domain.WrapErr(domain.KindSummarizeTransport, err, "create client")
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(summaryPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    summarySchema,
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(transcript), cfg)
	if err != nil {
		return "", domain.WrapErr(domain.KindSummarizeTransport, err, "generate content")
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", domain.E(domain.KindSummarizeTransport, "empty response from provider")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", domain.E(domain.KindSummarizeTransport, "response carried no text parts")
	}

	s.logger.Debug(ctx, "Summarization response: %d characters", len(text))
	return text, nil
}

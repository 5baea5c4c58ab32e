package summarizer

import "google.golang.org/genai"

// summarySchema pins the provider to the exact MeetingSummary shape.
// Optional fields are nullable rather than defaulted so the model can say
// "not found" instead of inventing placeholders.
var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "Title of the meeting",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "Executive summary of the meeting",
		},
		"participants": {
			Type:        genai.TypeArray,
			Nullable:    genai.Ptr(true),
			Description: "People who attended the meeting",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					"role": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				},
				Required: []string{"name", "role"},
			},
		},
		"key_points": {
			Type:        genai.TypeArray,
			Nullable:    genai.Ptr(true),
			Description: "Key points discussed in the meeting",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"decisions": {
			Type:        genai.TypeArray,
			Nullable:    genai.Ptr(true),
			Description: "Decisions made during the meeting",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {Type: genai.TypeString},
					"context":     {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				},
				Required: []string{"description", "context"},
			},
		},
		"action_items": {
			Type:        genai.TypeArray,
			Nullable:    genai.Ptr(true),
			Description: "Tasks assigned during the meeting",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"task":     {Type: genai.TypeString},
					"assignee": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					"deadline": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				},
				Required: []string{"task", "assignee", "deadline"},
			},
		},
	},
	Required: []string{"title", "summary", "participants", "key_points", "decisions", "action_items"},
}

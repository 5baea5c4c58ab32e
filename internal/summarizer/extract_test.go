package summarizer

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "raw json",
			raw:  `{"title": "Standup"}`,
			want: `{"title": "Standup"}`,
		},
		{
			name: "tagged fence",
			raw:  "Here you go:\n```json\n{\"title\": \"Standup\"}\n```\nHope that helps.",
			want: `{"title": "Standup"}`,
		},
		{
			name: "untagged fence",
			raw:  "```\n{\"title\": \"Standup\"}\n```",
			want: `{"title": "Standup"}`,
		},
		{
			name: "tagged fence wins over surrounding prose",
			raw:  "{broken prefix\n```json\n{\"title\": \"A\"}\n```",
			want: `{"title": "A"}`,
		},
		{
			name: "invalid fence content falls through to raw",
			raw:  `{"title": "B"}`,
			want: `{"title": "B"}`,
		},
		{
			name:    "nothing parseable",
			raw:     "```json\nnot json at all{{\n```",
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

package transcriber

import "testing"

func TestParseTranscription(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{
			name: "segments joined in temporal order",
			data: `{"transcription": [
				{"offsets": {"from": 0, "to": 1200}, "text": " Hello everyone,"},
				{"offsets": {"from": 1200, "to": 2400}, "text": " welcome to the standup. "}
			]}`,
			want: "Hello everyone, welcome to the standup.",
		},
		{
			name: "out of order segments are sorted by offset",
			data: `{"transcription": [
				{"offsets": {"from": 5000, "to": 6000}, "text": "second"},
				{"offsets": {"from": 100, "to": 900}, "text": "first"}
			]}`,
			want: "first second",
		},
		{
			name: "blank segments are dropped",
			data: `{"transcription": [
				{"offsets": {"from": 0, "to": 500}, "text": "   "},
				{"offsets": {"from": 500, "to": 900}, "text": " ok "}
			]}`,
			want: "ok",
		},
		{
			name: "empty transcription",
			data: `{"transcription": []}`,
			want: "",
		},
		{
			name:    "malformed json",
			data:    `{"transcription": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranscription([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTranscription() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTranscription() = %q, want %q", got, tt.want)
			}
		})
	}
}

package records

import (
	"reflect"
	"testing"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.RecordStatus) *domain.RecordStatus { return &s }

func TestBuildUpdate(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		wantSQL  string
		wantArgs []interface{}
		wantOK   bool
	}{
		{
			name: "all fields",
			fields: Fields{
				Status:      statusPtr(domain.RecordStatusCompleted),
				Transcript:  strPtr("hello"),
				SummaryJSON: strPtr(`{"title":"T"}`),
				Error:       strPtr(""),
			},
			wantSQL: "UPDATE transcripts SET status = $1, transcript = $2, summary_json = $3, error = $4 WHERE id = $5",
			wantArgs: []interface{}{
				domain.RecordStatusCompleted, "hello", `{"title":"T"}`, "", "rec-1",
			},
			wantOK: true,
		},
		{
			name: "transcript only",
			fields: Fields{
				Transcript: strPtr("partial"),
			},
			wantSQL:  "UPDATE transcripts SET transcript = $1 WHERE id = $2",
			wantArgs: []interface{}{"partial", "rec-1"},
			wantOK:   true,
		},
		{
			name: "status and error",
			fields: Fields{
				Status: statusPtr(domain.RecordStatusError),
				Error:  strPtr("engine fault"),
			},
			wantSQL:  "UPDATE transcripts SET status = $1, error = $2 WHERE id = $3",
			wantArgs: []interface{}{domain.RecordStatusError, "engine fault", "rec-1"},
			wantOK:   true,
		},
		{
			name:   "no fields",
			fields: Fields{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, ok := buildUpdate("rec-1", tt.fields)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

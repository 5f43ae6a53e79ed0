// ABOUTME: Tests for Record construction and serialization
// ABOUTME: Verifies trimming, timestamp rendering, and key order
package models

import (
	"encoding/json"
	"testing"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		ts       int64
		wantText string
		wantUTC  string
	}{
		{"plain", "hello world", 1262304000, "hello world", "1262304000"},
		{"surrounding spaces", " foo bar ", 1300000000, "foo bar", "1300000000"},
		{"newline and tabs", "\tskill\r\n", 1, "skill", "1"},
		{"blank line", "   ", 1609372800, "", "1609372800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(tt.line, tt.ts)
			if rec.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", rec.Text, tt.wantText)
			}
			if rec.UTC != tt.wantUTC {
				t.Errorf("UTC = %q, want %q", rec.UTC, tt.wantUTC)
			}
		})
	}
}

func TestRecord_JSONShape(t *testing.T) {
	data, err := json.Marshal(NewRecord("hello", 42))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"text":"hello","utc":"42"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

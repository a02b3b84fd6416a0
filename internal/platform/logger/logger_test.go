package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger_WritesBaseAndCallFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "clinical-rx", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("patient created", map[string]any{
		"doctor_id": 7,
		"":          "dropped",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["message"] != "patient created" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["app"] != "clinical-rx" || entry["request_id"] != "r-1" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["doctor_id"] != float64(7) {
		t.Fatalf("missing call field: %v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped: %v", entry)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	l.Error("visible", nil)
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("") != Info || ParseLevel("nope") != Info {
		t.Fatalf("unexpected ParseLevel results")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected ParseFormat results")
	}
}

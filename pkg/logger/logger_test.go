package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCloudRunHandlerWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelInfo)).With("request_id", "req-1")

	log.Error("store failed", "error", errors.New("boom"), "collection", "userdata")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if event["severity"] != "ERROR" {
		t.Fatalf("severity = %v, want ERROR", event["severity"])
	}
	if event["message"] != "store failed" {
		t.Fatalf("message = %v", event["message"])
	}
	data, ok := event["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object: %v", event)
	}
	if data["error"] != "boom" || data["collection"] != "userdata" || data["request_id"] != "req-1" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelWarn))

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written below warn level: %q", buf.String())
	}
	log.Warn("shown")
	if buf.Len() == 0 {
		t.Fatalf("warn line not written")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("FromContext returned nil without a stored logger")
	}

	var buf bytes.Buffer
	base := slog.New(newCloudRunHandler(&buf, slog.LevelInfo))
	ctx := ToContext(context.Background(), base)

	log, ctx := With(ctx, "operation", "AddUser")
	if FromContext(ctx) != log {
		t.Fatalf("With did not store the derived logger")
	}
	FromContext(ctx).Info("done")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data, _ := event["data"].(map[string]any); data["operation"] != "AddUser" {
		t.Fatalf("operation attribute missing: %v", event)
	}
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"bestbuy/pkg/logger"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "bestbuy", nil)

	log.Info(context.Background(), "order placed", "total", "1450")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("record is not JSON: %v (%s)", err, buf.String())
	}
	if rec["msg"] != "order placed" {
		t.Fatalf("unexpected msg: %v", rec["msg"])
	}
	if rec["service"] != "bestbuy" {
		t.Fatalf("unexpected service: %v", rec["service"])
	}
	if rec["total"] != "1450" {
		t.Fatalf("unexpected total: %v", rec["total"])
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelWarn, "bestbuy", nil)

	log.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered: %s", buf.String())
	}
	log.Warn(context.Background(), "kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn record missing: %s", buf.String())
	}
}

func TestLoggerTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "bestbuy", func(context.Context) string {
		return "abc123"
	})

	log.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), `"trace_id":"abc123"`) {
		t.Fatalf("trace id missing: %s", buf.String())
	}
}

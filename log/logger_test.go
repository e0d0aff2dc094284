package log_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwantia/dumpargs/log"
)

func TestLogger_Levels(t *testing.T) {
	var buffer bytes.Buffer
	logger := log.NewWriterLogger("test", log.Warn, &buffer)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	output := buffer.String()
	if strings.Contains(output, "debug 1") || strings.Contains(output, "info 2") {
		t.Errorf("Expected messages below WARN to be dropped, got %q", output)
	}
	if !strings.Contains(output, "WARN  [test] warn 3") {
		t.Errorf("Expected warn line, got %q", output)
	}
	if !strings.Contains(output, "ERROR [test] error 4") {
		t.Errorf("Expected error line, got %q", output)
	}
}

func TestLogger_NamedWith(t *testing.T) {
	var buffer bytes.Buffer
	logger := log.NewWriterLogger("engine", log.Debug, &buffer)

	logger.Named("parser").With("backend", "sqlite").Info("saved")

	if got := buffer.String(); !strings.Contains(got, "[engine/parser] saved backend=sqlite") {
		t.Errorf("Expected named line with fields, got %q", got)
	}

	buffer.Reset()
	logger.Info("plain")
	if got := buffer.String(); strings.Contains(got, "backend=") {
		t.Errorf("Expected parent logger without fields, got %q", got)
	}
}

func TestLogger_JSON(t *testing.T) {
	var buffer bytes.Buffer
	logger := log.NewWriterLogger("engine", log.Info, &buffer)
	logger.JSON = true

	logger.With("preset", "cd").Info("Saved preset '%s'", "cd")

	var entry map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if entry["level"] != "INFO" || entry["service"] != "engine" || entry["message"] != "Saved preset 'cd'" {
		t.Errorf("Unexpected entry: %v", entry)
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["preset"] != "cd" {
		t.Errorf("Expected preset field, got %v", entry["fields"])
	}
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dumpargs.log")
	logger := log.NewLogger("file", log.Info, path, true)

	logger.Info("written to file")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "written to file") {
		t.Errorf("Expected message in log file, got %q", content)
	}
}

func TestLogger_Discard(t *testing.T) {
	logger := log.Discard()
	logger.Error("dropped")
	logger.Named("child").Warn("dropped too")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.LogLevel{
		"debug":   log.Debug,
		"INFO":    log.Info,
		"":        log.Info,
		"warning": log.Warn,
		" error ": log.Error,
		"off":     log.Off,
	}

	for name, expected := range tests {
		got, err := log.ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", name, err)
			continue
		}
		if got != expected {
			t.Errorf("ParseLevel(%q): expected %s, got %s", name, expected, got)
		}
	}

	if _, err := log.ParseLevel("loud"); err == nil {
		t.Errorf("Expected unknown level to fail")
	}
}

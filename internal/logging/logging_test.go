package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, closeFn, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("search started", zap.String("query", "muse"))

	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"msg":"search started"`) {
		t.Errorf("log missing message: %s", out)
	}
	if !strings.Contains(out, `"query":"muse"`) {
		t.Errorf("log missing field: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, closeFn, err := New(Options{Level: "chatty", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closeFn() //nolint:errcheck // test cleanup

	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be disabled")
	}
	if !logger.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be enabled")
	}
}

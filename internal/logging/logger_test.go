package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "app.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Info("should not be written")
	Sync()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no log file in silent mode, stat err = %v", err)
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { Use(nil) })

	Debug("transition", zap.String("to", "dashboard"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "transition") || !strings.Contains(string(data), "dashboard") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	path := filepath.Join(t.TempDir(), "app.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { Use(nil) })

	Info("hidden")
	Warn("shown")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry missing")
	}
}

func TestGetLoggerNeverNil(t *testing.T) {
	Use(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil")
	}
}

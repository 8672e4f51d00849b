package log

import (
	"testing"
)

func TestConfigure_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		logger, err := Configure("prod", level)
		if err != nil {
			t.Errorf("Configure(prod, %q) returned error: %v", level, err)
		}
		if logger == nil {
			t.Errorf("Configure(prod, %q) returned nil logger", level)
		}
	}
}

func TestConfigure_InvalidLevel(t *testing.T) {
	if _, err := Configure("prod", "verbose"); err == nil {
		t.Fatal("expected error for invalid level, got nil")
	}
}

func TestConfigure_DevAndProdEncodings(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		logger, err := Configure(env, "debug")
		if err != nil {
			t.Fatalf("Configure(%q, debug) returned error: %v", env, err)
		}
		// exercise every level short of Fatal
		logger.Debug(map[string]any{"key1": "value1", "key2": 42, "key3": true}, "test debug")
		logger.Info(nil, "test info")
		logger.Warn(nil, "test warn")
		logger.Error(nil, "test error")
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.Debug(map[string]any{"k": "v"}, "dropped")
	logger.Info(nil, "dropped")
	logger.Warn(nil, "dropped")
	logger.Error(nil, "dropped")
	logger.Fatal(nil, "dropped") // noop Fatal must not exit
}

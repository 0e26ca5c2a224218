package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core).Sugar())
	t.Cleanup(func() { Set(nil) })

	Get().Infow("saved", "key", "investments")
	Get().Debug("hidden")

	if logs.Len() != 1 {
		t.Fatalf("got %d log entries, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["key"]; got != "investments" {
		t.Errorf("key = %v, want %q", got, "investments")
	}
}

func TestGet_DefaultsToInit(t *testing.T) {
	Set(nil)
	t.Cleanup(func() { Set(nil) })
	if Get() == nil {
		t.Fatal("Get() = nil, want a default logger")
	}
	if Get().Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("default logger enables info, want warn and above")
	}
}

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	Init("debug")
	if !Get().Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("Init(debug) does not enable debug")
	}
	Init("nonsense")
	if Get().Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("Init(nonsense) enables info, want warn")
	}
}

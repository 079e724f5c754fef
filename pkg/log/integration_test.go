package log

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// TestLoggerInterface tests the TestLogger implementation of Logger
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationGenerate)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorInvalidInput)
	testLogger.Error("error message", fmt.Errorf("test error"), "row", 3)

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "test error") {
		t.Error("leading error should be recorded under the error key")
	}
	if !testLogger.ContainsField("row", 3.0) {
		t.Error("fields after the leading error should be kept")
	}
}

// TestLoggerWith tests context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ComponentKey, "datasets",
		RandomSeedKey, 1000,
	)
	contextLogger.Info("contextual message", OperationKey, OperationMask)

	if !testLogger.ContainsField(ComponentKey, "datasets") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(RandomSeedKey, 1000.0) {
		t.Error("Seed context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationMask) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests level filtering
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestGenerationAttributeKeys tests the dataset attribute keys end to end
func TestGenerationAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Info("dataset generated",
		OperationKey, OperationGenerate,
		SamplesKey, 1000,
		FeaturesKey, 10,
		RowNonzeroKey, 1,
		ProblemKey, "regression",
		NoisyKey, true,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	expected := map[string]interface{}{
		OperationKey:  OperationGenerate,
		SamplesKey:    1000.0,
		FeaturesKey:   10.0,
		RowNonzeroKey: 1.0,
		ProblemKey:    "regression",
		NoisyKey:      true,
		"level":       "INFO",
	}
	for key, want := range expected {
		got, exists := entries[0][key]
		if !exists {
			t.Errorf("Expected field %s not found", key)
		} else if got != want {
			t.Errorf("Field %s: expected %v, got %v", key, want, got)
		}
	}
}

// TestConcurrentLogging tests thread safety of the capturing logger
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	const goroutines, perGoroutine = 4, 5
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("goroutine %d message %d", id, j), "goroutine_id", id)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != goroutines*perGoroutine {
		t.Errorf("Expected %d log entries, got %d", goroutines*perGoroutine, len(entries))
	}
}

func BenchmarkLogging(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationGenerate,
			SamplesKey, 1000,
		)
	}
}

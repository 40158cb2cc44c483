package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_KeepsZeroFields(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 7 * time.Second, Upload: time.Minute})

	if Short() != 7*time.Second {
		t.Errorf("Short() = %v", Short())
	}
	if Upload() != time.Minute {
		t.Errorf("Upload() = %v", Upload())
	}
	if Medium() != DefaultMedium || Ping() != DefaultPing || Long() != DefaultLong {
		t.Errorf("unset values changed: %+v", Current())
	}

	Reset()
	if Short() != DefaultShort {
		t.Errorf("after Reset, Short() = %v", Short())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "slow read")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("got %d log entries, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "slow read" {
		t.Errorf("operation field = %v", got)
	}
}

func TestWithTimeout_NoLogOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := WithTimeout(context.Background(), time.Hour, zap.New(core), "fast read")
	cancel()
	if logs.Len() != 0 {
		t.Errorf("got %d log entries, want 0", logs.Len())
	}
}

package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	r := &Retry{Attempts: 3, Delay: time.Millisecond, Logger: NewLoggerAt(LevelError)}

	calls := 0
	err := r.Do("flaky op", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("got %v, want success on third attempt", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	r := &Retry{Attempts: 2, Delay: time.Millisecond, Logger: NewLoggerAt(LevelError)}

	sentinel := errors.New("still down")
	calls := 0
	err := r.Do("doomed op", func() error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want the last error", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

package cancel

import (
	"context"
	"errors"
	"testing"
)

func TestStopResetRequested(t *testing.T) {
	Reset()
	if Requested() {
		t.Fatal("expected not requested after Reset")
	}
	Stop()
	if !Requested() {
		t.Fatal("expected requested after Stop")
	}
	Reset()
	if Requested() {
		t.Fatal("expected not requested after second Reset")
	}
}

func TestCheckReturnsCancellation(t *testing.T) {
	Reset()
	defer Reset()
	if err := Check(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	Stop()
	if err := Check(context.Background()); !errors.Is(err, Cancellation) {
		t.Fatalf("expected Cancellation, got %v", err)
	}
}

func TestCheckRespectsContext(t *testing.T) {
	Reset()
	defer Reset()
	ctx, cancelFn := context.WithCancel(context.Background())
	cancelFn()
	if err := Check(ctx); err == nil {
		t.Fatal("expected a non-nil error from a cancelled context")
	}
}

func TestCheckPanicAndRecover(t *testing.T) {
	Reset()
	defer Reset()
	Stop()

	var err error
	func() {
		defer Recover(&err)
		CheckPanic()
		t.Fatal("unreachable: CheckPanic should have panicked")
	}()

	if !errors.Is(err, Cancellation) {
		t.Fatalf("expected Cancellation, got %v", err)
	}
}

func TestRecoverRepanicsNonError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Recover to re-panic a non-error value")
		}
	}()
	var err error
	func() {
		defer Recover(&err)
		panic("not an error")
	}()
}

package errors

import (
	"bytes"
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidChannelName, "invalid channel name"},
		{KindBusDestroyed, "bus destroyed"},
		{KindNonWritableChannel, "non-writable channel"},
		{KindChannelNotFound, "channel not found"},
		{KindNonRemovableChannel, "non-removable channel"},
		{KindDuplicateListener, "duplicate listener"},
		{KindNilListener, "nil listener"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBusErrorMessage(t *testing.T) {
	err := &BusError{Op: "bus.Handle", Kind: KindNonWritableChannel, Channel: "color"}
	got := err.Error()
	if !strings.Contains(got, "bus.Handle") || !strings.Contains(got, `"color"`) {
		t.Errorf("unexpected message %q", got)
	}

	err = &BusError{Op: "bus.Clear", Kind: KindBusDestroyed}
	if got := err.Error(); strings.Contains(got, `""`) {
		t.Errorf("message should omit empty channel, got %q", got)
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(&BusError{Kind: KindChannelNotFound}); got != KindChannelNotFound {
		t.Errorf("KindOf(BusError) = %v", got)
	}
	if got := KindOf(&ListenerError{Kind: KindDuplicateListener}); got != KindDuplicateListener {
		t.Errorf("KindOf(ListenerError) = %v", got)
	}
	if got := KindOf(&HookError{Kind: KindNilListener}); got != KindNilListener {
		t.Errorf("KindOf(HookError) = %v", got)
	}
	if got := KindOf(&PanicError{Value: "boom"}); got != KindPanic {
		t.Errorf("KindOf(PanicError) = %v", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v", got)
	}
}

func TestIsKind(t *testing.T) {
	err := &BusError{Op: "bus.Remove", Kind: KindNonRemovableChannel, Channel: "root"}
	if !IsKind(err, KindNonRemovableChannel) {
		t.Error("expected IsKind to match")
	}
	if IsKind(err, KindChannelNotFound) {
		t.Error("expected IsKind to reject other kind")
	}
	if IsKind(nil, KindUnknown) {
		t.Error("nil error should never match")
	}
}

func TestLogHandlerWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&BusError{Op: "bus.Invoke", Kind: KindInvalidChannelName})
	if !strings.Contains(buf.String(), "invalid channel name") {
		t.Errorf("missing error output, got %q", buf.String())
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "hooks.Fire", Value: "boom"})
	if !strings.Contains(buf.String(), "hooks.Fire") {
		t.Errorf("missing panic output, got %q", buf.String())
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}

	func() {
		defer Recover(h, "test.op")
		panic("exploded")
	}()

	out := buf.String()
	if !strings.Contains(out, "exploded") {
		t.Errorf("panic value not reported, got %q", out)
	}
	if !strings.Contains(out, "Stack trace") {
		t.Errorf("verbose handler should include stack trace, got %q", out)
	}
}

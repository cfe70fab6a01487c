package errors

import (
	"errors"
	"fmt"
	"testing"
)

type captureHandler struct {
	errs   []*StyleError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *StyleError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestampAndDelivers(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&StyleError{
		Op:   "styles.Get",
		Kind: KindLookup,
		Err:  fmt.Errorf("expected a color"),
	})

	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("timestamp was not set")
	}

	// Nil reports are dropped.
	Report(nil)
	if len(capture.errs) != 1 {
		t.Fatalf("nil report delivered, got %d errors", len(capture.errs))
	}
}

func TestStyleErrorFormatting(t *testing.T) {
	base := fmt.Errorf("boom")
	err := &StyleError{Op: "styles.Get", Kind: KindConversion, Err: base}
	if got := err.Error(); got != "styles.Get [conversion]: boom" {
		t.Errorf("unexpected message: %q", got)
	}
	err.Component = "widget.background"
	if got := err.Error(); got != "styles.Get [conversion] component=widget.background: boom" {
		t.Errorf("unexpected message with component: %q", got)
	}
	if !errors.Is(err, base) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("something broke")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(capture.panics))
	}
	p := capture.panics[0]
	if p.Op != "test.op" || p.Value != "something broke" {
		t.Errorf("unexpected panic record: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Fatalf("expected LogHandler, got %T", getHandler())
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindUnknown:    "unknown",
		KindLookup:     "lookup",
		KindConversion: "conversion",
		KindConfig:     "config",
		KindPanic:      "panic",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

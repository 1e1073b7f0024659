package diag

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestUnavailableFont(t *testing.T) {
	err := UnavailableFont("Montserrat-Regular")

	if err.Domain != "Font Style Unavailable - Montserrat-Regular" {
		t.Errorf("unexpected domain: %s", err.Domain)
	}
	if err.Code != CodeUnavailableFont {
		t.Errorf("expected code %d, got %d", CodeUnavailableFont, err.Code)
	}
	if !strings.Contains(err.Error(), "could not load the requested font: Montserrat-Regular") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	var target *NonFatal
	var wrapped error = err
	if !errors.As(wrapped, &target) {
		t.Fatal("expected errors.As to find *NonFatal")
	}
	if target.Code != 100 {
		t.Errorf("expected code 100, got %d", target.Code)
	}
}

func TestLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "tuxedo.fonts", slog.LevelInfo)

	l.Info("registered fonts", "count", 7)
	l.Warn("fallback font")
	l.NonFatal(UnavailableFont("Lexend-Bold"))

	out := buf.String()
	for _, want := range []string{"level=INFO", "count=7", "level=WARN", "level=ERROR", "subsystem=tuxedo.fonts", "code=100"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output, got: %s", want, out)
		}
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "tuxedo", slog.LevelWarn)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below WARN, got: %s", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Info("a")
	r.NonFatal(UnavailableFont("x"))
	r.Error("b")

	recs := r.Records()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Level != slog.LevelInfo {
		t.Errorf("expected first record at INFO, got %s", recs[0].Level)
	}
	nf := r.NonFatals()
	if len(nf) != 1 {
		t.Fatalf("expected 1 NonFatal, got %d", len(nf))
	}
	if nf[0].Domain != "Font Style Unavailable - x" {
		t.Errorf("unexpected domain: %s", nf[0].Domain)
	}
}

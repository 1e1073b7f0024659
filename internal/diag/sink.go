package diag

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Sink receives leveled messages and non-fatal error records.
type Sink interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	NonFatal(err *NonFatal)
}

// Logger is a Sink on top of slog.
type Logger struct {
	log *slog.Logger
}

// NewLogger writes text records to w, tagged with subsystem.
func NewLogger(w io.Writer, subsystem string, level slog.Level) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{log: slog.New(h).With("subsystem", subsystem)}
}

// FromSlog wraps an existing slog.Logger.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{log: l}
}

func (l *Logger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

// NonFatal logs err at error level with its domain and code as attributes.
func (l *Logger) NonFatal(err *NonFatal) {
	l.log.LogAttrs(context.Background(), slog.LevelError, "non-fatal error",
		slog.String("domain", err.Domain),
		slog.Int("code", err.Code),
		slog.String("description", err.Description),
	)
}

// Discard drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (discard) NonFatal(*NonFatal)   {}

// Record is one entry captured by a Recorder.
type Record struct {
	Level   slog.Level
	Message string
	Err     *NonFatal
}

// Recorder keeps every entry in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func (r *Recorder) add(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

func (r *Recorder) Info(msg string, _ ...any)  { r.add(Record{Level: slog.LevelInfo, Message: msg}) }
func (r *Recorder) Warn(msg string, _ ...any)  { r.add(Record{Level: slog.LevelWarn, Message: msg}) }
func (r *Recorder) Error(msg string, _ ...any) { r.add(Record{Level: slog.LevelError, Message: msg}) }

func (r *Recorder) NonFatal(err *NonFatal) {
	r.add(Record{Level: slog.LevelError, Message: err.Error(), Err: err})
}

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// NonFatals returns only the non-fatal error records.
func (r *Recorder) NonFatals() []*NonFatal {
	var out []*NonFatal
	for _, rec := range r.Records() {
		if rec.Err != nil {
			out = append(out, rec.Err)
		}
	}
	return out
}

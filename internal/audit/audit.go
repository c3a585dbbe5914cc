// AngelaMos | 2026
// audit.go

package audit

import (
	"context"
	"log/slog"
	"time"
)

// Entry describes one admin action worth recording.
type Entry struct {
	Actor    string
	Role     string
	Action   string
	Resource string
	Detail   string
	At       time.Time
}

// Sink receives notifications of admin actions. Delivery is
// best-effort: recording must never block or fail the action itself.
type Sink interface {
	Record(ctx context.Context, entry Entry)
}

// LogSink writes audit entries to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, entry Entry) {
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	s.logger.InfoContext(ctx, "admin action",
		"actor", entry.Actor,
		"role", entry.Role,
		"action", entry.Action,
		"resource", entry.Resource,
		"detail", entry.Detail,
		"at", entry.At,
	)
}

// NopSink discards every entry.
type NopSink struct{}

func (NopSink) Record(context.Context, Entry) {}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = NopSink{}
)

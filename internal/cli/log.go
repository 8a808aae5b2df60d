package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// withLogger returns a context carrying the given logger.
func withLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFromContext extracts the logger from the context, falling back to
// the default logger if none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}

// progress tracks elapsed time for a multi-step operation and logs each
// step with its duration.
type progress struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

func newProgress(logger *log.Logger) *progress {
	now := time.Now()
	return &progress{logger: logger, start: now, last: now}
}

// step logs a completed step with the time since the previous step.
func (p *progress) step(msg string, args ...any) {
	now := time.Now()
	elapsed := now.Sub(p.last)
	p.last = now
	p.logger.Debug(msg, append(args, "took", elapsed.Round(time.Millisecond))...)
}

// done logs the total elapsed time.
func (p *progress) done(msg string) {
	p.logger.Debug(msg, "total", time.Since(p.start).Round(time.Millisecond))
}

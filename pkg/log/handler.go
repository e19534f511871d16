package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler decorates another slog handler, promoting the stack trace
// carried by a cockroachdb error attribute into its own attribute.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler so records logged with ErrAttr gain a
// stacktrace attribute when their error carries one.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := errFromRecord(r); err != nil {
		if st := extractStacktrace(err); st != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, st))
		}
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// errFromRecord returns the value of the record's error attribute, nil
// when absent or not an error.
func errFromRecord(r slog.Record) error {
	var found error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			found = err
		}
		return false
	})
	return found
}

// extractStacktrace pulls the first safe-detail payload attached to the
// error, which is where cockroachdb's WithStack records the trace.
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) == 0 {
		return ""
	}
	return details[0]
}

// levelHandler caps another handler at a mutable minimum level.
type levelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

func newLevelHandler(level slog.Leveler, handler slog.Handler) slog.Handler {
	if lh, ok := handler.(*levelHandler); ok {
		handler = lh.handler
	}
	return &levelHandler{level: level, handler: handler}
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.handler.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(g string) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithGroup(g)}
}

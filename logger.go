package pixedit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Reporting Enabled as false lets slog skip
// building attributes for stroke and undo events nobody listens to.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// editorLogger is shared by every session that was not given its own
// logger with WithLogger, and by the render and script packages.
var editorLogger atomic.Pointer[slog.Logger]

func init() {
	editorLogger.Store(newNopLogger())
}

// SetLogger installs the logger used for editing sessions, rendering and
// script replay. pixedit is silent until this is called; nil silences it
// again. It may be called from any goroutine.
//
// Records by level:
//   - [slog.LevelDebug]: stroke begin/end, undo and redo, shortcuts, encodes
//   - [slog.LevelInfo]: session created, canvas resized or loaded
//   - [slog.LevelWarn]: a colour string that did not parse
//
// Session records carry a "session" attribute with the session ID:
//
//	pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	editorLogger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return editorLogger.Load()
}

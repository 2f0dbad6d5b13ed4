package pixedit

import "log/slog"

// SessionOption configures a Session during creation.
//
// Example:
//
//	s, err := pixedit.NewSession(64, 64,
//	    pixedit.WithHistoryDepth(100),
//	    pixedit.WithColor("#ff00ff"),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	historyDepth int
	tool         Tool
	brushSize    BrushSize
	color        string
	zoom         int
	logger       *slog.Logger
}

// defaultSessionOptions mirrors the editor's initial tool state.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		historyDepth: DefaultHistoryDepth,
		tool:         ToolPencil,
		brushSize:    1,
		color:        "#000000",
		zoom:         DefaultZoom,
	}
}

// WithHistoryDepth sets the maximum number of undo steps.
// A depth of 0 or less selects DefaultHistoryDepth.
func WithHistoryDepth(depth int) SessionOption {
	return func(o *sessionOptions) {
		o.historyDepth = depth
	}
}

// WithTool sets the initially active tool.
func WithTool(t Tool) SessionOption {
	return func(o *sessionOptions) {
		o.tool = t
	}
}

// WithBrushSize sets the initial brush size. NewSession rejects sizes that
// are not in BrushSizes.
func WithBrushSize(size BrushSize) SessionOption {
	return func(o *sessionOptions) {
		o.brushSize = size
	}
}

// WithColor sets the initial paint color as a "#RRGGBB" string.
func WithColor(hex string) SessionOption {
	return func(o *sessionOptions) {
		o.color = hex
	}
}

// WithZoom sets the initial display zoom. Values outside ZoomLevels fall
// back to DefaultZoom.
func WithZoom(zoom int) SessionOption {
	return func(o *sessionOptions) {
		o.zoom = zoom
	}
}

// WithLogger sets a logger for this session only, overriding Logger().
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

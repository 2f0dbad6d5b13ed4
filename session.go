package pixedit

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"
)

// Session is one editing session: a bitmap, its undo history, the stroke
// controller feeding it, and the active tool state.
//
// All methods are expected to be called from a single event loop.
// Session is not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	bitmap   *Bitmap
	history  *History
	stroke   *StrokeController
	brush    Brush
	colorHex string
	viewport Viewport
	logger   *slog.Logger

	dirty      image.Rectangle
	generation uint64
}

// NewSession creates a session with a transparent width x height bitmap.
// Returns ErrInvalidDimension for non-positive sizes and ErrInvalidBrushSize
// when WithBrushSize was given a size outside BrushSizes.
func NewSession(width, height int, opts ...SessionOption) (*Session, error) {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.brushSize.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBrushSize, o.brushSize)
	}
	if !validZoom(o.zoom) {
		o.zoom = DefaultZoom
	}

	b, err := New(width, height)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.New(),
		bitmap:   b,
		history:  NewHistory(o.historyDepth),
		brush:    Brush{Tool: o.tool, Size: o.brushSize},
		viewport: Viewport{Zoom: o.zoom},
		logger:   o.logger,
	}
	s.stroke = NewStrokeController(s)
	s.SetColor(o.color)

	s.log().Info("session created",
		"width", width, "height", height, "history_depth", s.history.Depth())
	return s, nil
}

// log returns the session logger tagged with the session ID.
func (s *Session) log() *slog.Logger {
	l := s.logger
	if l == nil {
		l = Logger()
	}
	return l.With("session", s.id.String())
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Bitmap returns the live bitmap. It is replaced, not modified, by Undo,
// Redo and Resize, so callers should not hold on to it across events.
func (s *Session) Bitmap() *Bitmap {
	return s.bitmap
}

// History returns the session's undo history.
func (s *Session) History() *History {
	return s.history
}

// Width returns the current canvas width.
func (s *Session) Width() int {
	return s.bitmap.Width()
}

// Height returns the current canvas height.
func (s *Session) Height() int {
	return s.bitmap.Height()
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	return s.brush.Tool
}

// SetTool selects the active tool.
func (s *Session) SetTool(t Tool) {
	s.brush.Tool = t
}

// BrushSize returns the active brush size.
func (s *Session) BrushSize() BrushSize {
	return s.brush.Size
}

// SetBrushSize selects the brush size. Returns ErrInvalidBrushSize, leaving
// the current size unchanged, when size is not in BrushSizes.
func (s *Session) SetBrushSize(size BrushSize) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBrushSize, size)
	}
	s.brush.Size = size
	return nil
}

// Color returns the active color string as it was set.
func (s *Session) Color() string {
	return s.colorHex
}

// SetColor sets the paint color from a "#RRGGBB" string.
// Malformed strings are kept as given but paint opaque black.
func (s *Session) SetColor(hex string) {
	c, err := ParseHexStrict(hex)
	if err != nil {
		s.log().Warn("malformed color, painting black", "color", hex)
		c = Black
	}
	s.colorHex = hex
	s.brush.Color = c
}

// Brush returns the brush applied by strokes.
func (s *Session) Brush() Brush {
	return s.brush
}

// Viewport returns the display mapping.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// SetZoom sets the display zoom. Values outside ZoomLevels are ignored and
// false is returned.
func (s *Session) SetZoom(zoom int) bool {
	if !validZoom(zoom) {
		return false
	}
	s.viewport.Zoom = zoom
	return true
}

// Bounds implements StrokeTarget.
func (s *Session) Bounds() image.Rectangle {
	return s.bitmap.Bounds()
}

// BeginStroke records a snapshot of the bitmap so that one Undo reverts the
// stroke that is about to start. It implements StrokeTarget and is invoked
// by the stroke controller on pointer-down.
func (s *Session) BeginStroke() {
	s.history.Push(s.bitmap)
	s.log().Debug("stroke begin", "tool", s.brush.Tool.String(), "undo_len", s.history.UndoLen())
}

// ApplyAt applies the active brush at (x, y). It implements StrokeTarget.
func (s *Session) ApplyAt(x, y int) {
	s.touch(s.brush.Apply(s.bitmap, x, y))
}

// Dragging reports whether a stroke is in progress.
func (s *Session) Dragging() bool {
	return s.stroke.State() == StrokeDragging
}

// PointerDown starts a stroke at pixel (x, y) if it lies on the canvas.
func (s *Session) PointerDown(x, y int) {
	s.stroke.Down(image.Pt(x, y))
}

// PointerMove extends the current stroke to pixel (x, y).
func (s *Session) PointerMove(x, y int) {
	s.stroke.Move(image.Pt(x, y))
}

// PointerUp ends the current stroke. The position is not painted.
func (s *Session) PointerUp(_, _ int) {
	if s.stroke.Up() {
		s.log().Debug("stroke end")
	}
}

// PointerLeave ends the current stroke when the pointer leaves the widget.
func (s *Session) PointerLeave() {
	if s.stroke.Leave() {
		s.log().Debug("stroke end", "reason", "leave")
	}
}

// ScreenDown is PointerDown for display coordinates.
func (s *Session) ScreenDown(sx, sy float64) {
	s.stroke.Down(s.viewport.ScreenToPixel(sx, sy))
}

// ScreenMove is PointerMove for display coordinates.
func (s *Session) ScreenMove(sx, sy float64) {
	s.stroke.Move(s.viewport.ScreenToPixel(sx, sy))
}

// Undo reverts the most recent stroke. It returns false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	prev, ok := s.history.Undo(s.bitmap)
	if !ok {
		return false
	}
	s.replace(prev)
	s.log().Debug("undo", "undo_len", s.history.UndoLen(), "redo_len", s.history.RedoLen())
	return true
}

// Redo reapplies the most recently undone stroke. It returns false when
// there is nothing to redo.
func (s *Session) Redo() bool {
	next, ok := s.history.Redo(s.bitmap)
	if !ok {
		return false
	}
	s.replace(next)
	s.log().Debug("redo", "undo_len", s.history.UndoLen(), "redo_len", s.history.RedoLen())
	return true
}

// CanUndo reports whether Undo would change the bitmap.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the bitmap.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// Clear erases the whole canvas as a single undoable step.
func (s *Session) Clear() {
	s.history.Push(s.bitmap)
	s.bitmap.Clear()
	s.touch(s.bitmap.Bounds())
}

// Resize replaces the canvas with a transparent width x height bitmap.
// Artwork and history are discarded and any stroke in progress ends.
// Returns ErrInvalidDimension, leaving the session untouched, for
// non-positive sizes.
func (s *Session) Resize(width, height int) error {
	b, err := s.bitmap.Resize(width, height)
	if err != nil {
		return err
	}
	s.stroke.Up()
	s.history.Clear()
	s.replace(b)
	s.log().Info("canvas resized", "width", width, "height", height)
	return nil
}

// Load replaces the canvas with a copy of img, discarding history like
// Resize does.
func (s *Session) Load(img image.Image) error {
	b, err := FromImage(img)
	if err != nil {
		return err
	}
	s.stroke.Up()
	s.history.Clear()
	s.replace(b)
	s.log().Info("canvas loaded", "width", b.Width(), "height", b.Height())
	return nil
}

// ToImage returns a copy of the raw RGBA bytes, len == Width()*Height()*4.
func (s *Session) ToImage() []byte {
	out := make([]byte, len(s.bitmap.data))
	copy(out, s.bitmap.data)
	return out
}

// Generation returns a counter that increases on every visible change to
// the bitmap. Renderers can compare it to skip redundant redraws.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Dirty returns the union of all pixels changed since the last ResetDirty.
func (s *Session) Dirty() image.Rectangle {
	return s.dirty
}

// ResetDirty clears the dirty rectangle.
func (s *Session) ResetDirty() {
	s.dirty = image.Rectangle{}
}

// replace swaps in a new bitmap and marks it fully dirty.
func (s *Session) replace(b *Bitmap) {
	s.bitmap = b
	s.dirty = image.Rectangle{}
	s.touch(b.Bounds())
}

// touch records r as changed.
func (s *Session) touch(r image.Rectangle) {
	if r.Empty() {
		return
	}
	s.dirty = s.dirty.Union(r)
	s.generation++
}

package pixedit

// DefaultHistoryDepth is the number of undo steps kept when no depth is given.
const DefaultHistoryDepth = 50

// History is a bounded undo/redo stack of full-bitmap snapshots.
//
// Snapshots are deep copies: History never aliases a bitmap passed to it
// and never hands out a bitmap it still holds.
//
// History is not safe for concurrent use.
type History struct {
	undo  []*Bitmap
	redo  []*Bitmap
	depth int
}

// NewHistory creates a history that keeps at most depth undo steps.
// A depth of 0 or less selects DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{
		undo:  make([]*Bitmap, 0, depth),
		depth: depth,
	}
}

// Push records a snapshot of b as the newest undo step and discards every
// redo step. The oldest undo step is evicted once depth is exceeded.
func (h *History) Push(b *Bitmap) {
	h.pushUndo(b.Clone())
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo returns the most recent snapshot and stores a copy of current for
// Redo. ok is false, and nothing changes, when there is nothing to undo.
func (h *History) Undo(current *Bitmap) (prev *Bitmap, ok bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	h.redo = append(h.redo, current.Clone())
	return pop(&h.undo), true
}

// Redo returns the most recently undone snapshot and stores a copy of
// current for Undo. ok is false, and nothing changes, when there is nothing
// to redo.
func (h *History) Redo(current *Bitmap) (next *Bitmap, ok bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	h.pushUndo(current.Clone())
	return pop(&h.redo), true
}

// CanUndo reports whether Undo would return a snapshot.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether Redo would return a snapshot.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoLen returns the number of available undo steps.
func (h *History) UndoLen() int {
	return len(h.undo)
}

// RedoLen returns the number of available redo steps.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// Depth returns the maximum number of undo steps.
func (h *History) Depth() int {
	return h.depth
}

// Clear drops every undo and redo step.
func (h *History) Clear() {
	clear(h.undo)
	h.undo = h.undo[:0]
	clear(h.redo)
	h.redo = h.redo[:0]
}

// pushUndo appends b, shifting out the oldest entry when over depth.
func (h *History) pushUndo(b *Bitmap) {
	h.undo = append(h.undo, b)
	if len(h.undo) > h.depth {
		n := copy(h.undo, h.undo[1:])
		h.undo[n] = nil
		h.undo = h.undo[:n]
	}
}

// pop removes and returns the last element of *s.
func pop(s *[]*Bitmap) *Bitmap {
	last := len(*s) - 1
	b := (*s)[last]
	(*s)[last] = nil
	*s = (*s)[:last]
	return b
}

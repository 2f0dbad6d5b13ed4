package pixedit

import (
	"strings"
)

// KeyEvent is a keyboard event delivered by the host.
type KeyEvent struct {
	// Key is the key value, e.g. "p", "Z", "y".
	Key string

	Ctrl  bool
	Meta  bool
	Shift bool

	// TextInput is true when a text input control has focus. Shortcuts are
	// never handled while typing.
	TextInput bool
}

// ParseKey parses a "+"-separated shortcut such as "ctrl+z",
// "meta+shift+z" or "e". An "input:" prefix marks the event as typed into
// a focused text control.
func ParseKey(combo string) KeyEvent {
	var ev KeyEvent
	if rest, ok := strings.CutPrefix(combo, "input:"); ok {
		ev.TextInput = true
		combo = rest
	}
	parts := strings.Split(combo, "+")
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl":
			ev.Ctrl = true
		case "meta", "cmd":
			ev.Meta = true
		case "shift":
			ev.Shift = true
		}
	}
	ev.Key = parts[len(parts)-1]
	return ev
}

// HandleKey applies the editor shortcuts:
//
//	p            pencil
//	e            eraser
//	Ctrl/Meta+Z  undo
//	Ctrl/Meta+Y  redo
//	Ctrl/Meta+Shift+Z  redo
//
// It reports whether the event was consumed. Events with TextInput set are
// always left to the text control.
func (s *Session) HandleKey(ev KeyEvent) bool {
	if ev.TextInput {
		return false
	}
	key := strings.ToLower(ev.Key)
	mod := ev.Ctrl || ev.Meta

	switch {
	case !mod && key == "p":
		s.SetTool(ToolPencil)
	case !mod && key == "e":
		s.SetTool(ToolEraser)
	case mod && key == "z" && ev.Shift:
		s.Redo()
	case mod && key == "z":
		s.Undo()
	case mod && key == "y":
		s.Redo()
	default:
		return false
	}
	s.log().Debug("shortcut", "key", ev.Key, "tool", s.brush.Tool.String())
	return true
}

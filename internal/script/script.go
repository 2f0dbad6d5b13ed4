// Package script parses and replays line-oriented editor event scripts.
//
// A script stands in for the host event loop: each line is one pointer,
// keyboard or tool event delivered to a pixedit.Session in order.
//
//	# draw a red diagonal, then erase its start
//	color #ff0000
//	brush 2
//	down 0 0
//	move 15 15
//	up
//	tool eraser
//	down 0 0
//	up
//	key ctrl+z
//
// Blank lines are skipped. A '#' at the start of a line, or followed by
// whitespace, starts a comment.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/pixedit"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("script: syntax error")

// Op is a script command verb.
type Op string

// Script verbs.
const (
	OpTool   Op = "tool"
	OpBrush  Op = "brush"
	OpColor  Op = "color"
	OpZoom   Op = "zoom"
	OpDown   Op = "down"
	OpMove   Op = "move"
	OpUp     Op = "up"
	OpLeave  Op = "leave"
	OpSDown  Op = "sdown"
	OpSMove  Op = "smove"
	OpUndo   Op = "undo"
	OpRedo   Op = "redo"
	OpClear  Op = "clear"
	OpResize Op = "resize"
	OpKey    Op = "key"
)

// arity is the number of arguments each verb takes.
var arity = map[Op]int{
	OpTool: 1, OpBrush: 1, OpColor: 1, OpZoom: 1,
	OpDown: 2, OpMove: 2, OpUp: 0, OpLeave: 0,
	OpSDown: 2, OpSMove: 2,
	OpUndo: 0, OpRedo: 0, OpClear: 0,
	OpResize: 2, OpKey: 1,
}

// Command is one parsed script line.
type Command struct {
	Line int
	Op   Op
	Args []string

	tool  pixedit.Tool
	ints  [2]int
	reals [2]float64
}

// String returns the command in script syntax.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Op)
	}
	return string(c.Op) + " " + strings.Join(c.Args, " ")
}

// Parse reads a script. Errors name the offending line and wrap ErrSyntax.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(line, fields)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return cmds, nil
}

// stripComment removes a comment. A '#' starts a comment at the start of
// a line or when followed by whitespace, so "color #ff0000" is kept.
func stripComment(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			continue
		}
		if i == 0 || i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t' {
			return s[:i]
		}
	}
	return s
}

func parseCommand(line int, fields []string) (Command, error) {
	cmd := Command{Line: line, Op: Op(strings.ToLower(fields[0])), Args: fields[1:]}
	want, ok := arity[cmd.Op]
	if !ok {
		return cmd, fmt.Errorf("%w: line %d: unknown command %q", ErrSyntax, line, fields[0])
	}
	if len(cmd.Args) != want {
		return cmd, fmt.Errorf("%w: line %d: %s takes %d argument(s), got %d",
			ErrSyntax, line, cmd.Op, want, len(cmd.Args))
	}

	var err error
	switch cmd.Op {
	case OpTool:
		cmd.tool, err = pixedit.ParseTool(cmd.Args[0])
	case OpBrush, OpZoom:
		cmd.ints[0], err = strconv.Atoi(cmd.Args[0])
	case OpDown, OpMove, OpResize:
		cmd.ints[0], err = strconv.Atoi(cmd.Args[0])
		if err == nil {
			cmd.ints[1], err = strconv.Atoi(cmd.Args[1])
		}
	case OpSDown, OpSMove:
		cmd.reals[0], err = strconv.ParseFloat(cmd.Args[0], 64)
		if err == nil {
			cmd.reals[1], err = strconv.ParseFloat(cmd.Args[1], 64)
		}
	}
	if err != nil {
		return cmd, fmt.Errorf("%w: line %d: %s: %w", ErrSyntax, line, cmd.Op, err)
	}
	return cmd, nil
}

// Run applies cmds to s in order. It stops at the first command the session
// rejects (bad brush size, bad dimensions) and returns ctx.Err() if ctx is
// cancelled between commands.
func Run(ctx context.Context, s *pixedit.Session, cmds []Command) error {
	log := pixedit.Logger()
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(s, cmd); err != nil {
			return fmt.Errorf("script: line %d: %w", cmd.Line, err)
		}
		log.Debug("script command", "line", cmd.Line, "cmd", cmd.String())
	}
	return nil
}

func apply(s *pixedit.Session, cmd Command) error {
	switch cmd.Op {
	case OpTool:
		s.SetTool(cmd.tool)
	case OpBrush:
		return s.SetBrushSize(pixedit.BrushSize(cmd.ints[0]))
	case OpColor:
		s.SetColor(cmd.Args[0])
	case OpZoom:
		if !s.SetZoom(cmd.ints[0]) {
			return fmt.Errorf("unsupported zoom %d", cmd.ints[0])
		}
	case OpDown:
		s.PointerDown(cmd.ints[0], cmd.ints[1])
	case OpMove:
		s.PointerMove(cmd.ints[0], cmd.ints[1])
	case OpUp:
		s.PointerUp(0, 0)
	case OpLeave:
		s.PointerLeave()
	case OpSDown:
		s.ScreenDown(cmd.reals[0], cmd.reals[1])
	case OpSMove:
		s.ScreenMove(cmd.reals[0], cmd.reals[1])
	case OpUndo:
		s.Undo()
	case OpRedo:
		s.Redo()
	case OpClear:
		s.Clear()
	case OpResize:
		return s.Resize(cmd.ints[0], cmd.ints[1])
	case OpKey:
		s.HandleKey(pixedit.ParseKey(cmd.Args[0]))
	}
	return nil
}

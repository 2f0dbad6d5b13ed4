package script

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/pixedit"
)

func mustParse(t *testing.T, src string) []Command {
	t.Helper()
	cmds, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cmds
}

func TestParse(t *testing.T) {
	cmds := mustParse(t, `
# header comment
color #ff0000   # trailing comment
BRUSH 2
down 0 0
move 15 15
up

sdown 4.5 8
key ctrl+shift+z
`)
	want := []struct {
		line int
		str  string
	}{
		{3, "color #ff0000"},
		{4, "brush 2"},
		{5, "down 0 0"},
		{6, "move 15 15"},
		{7, "up"},
		{9, "sdown 4.5 8"},
		{10, "key ctrl+shift+z"},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d: %v", len(cmds), len(want), cmds)
	}
	for i, w := range want {
		if cmds[i].Line != w.line || cmds[i].String() != w.str {
			t.Errorf("cmd %d = line %d %q, want line %d %q", i, cmds[i].Line, cmds[i].String(), w.line, w.str)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line string
	}{
		{"unknown verb", "fill 1 1", "line 1"},
		{"missing args", "up\ndown 1", "line 2"},
		{"extra args", "undo now", "line 1"},
		{"bad int", "move a 1", "line 1"},
		{"bad float", "smove 1 x", "line 1"},
		{"bad tool", "tool bucket", "line 1"},
		{"color without value", "color", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Parse() error = %v, want ErrSyntax", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q does not name %s", err, tt.line)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct{ in, want string }{
		{"# whole line", ""},
		{"#", ""},
		{"color #abcdef", "color #abcdef"},
		{"color #abcdef # note", "color #abcdef "},
		{"color #zzzzzz", "color #zzzzzz"},
		{"up #", "up "},
	}
	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	s, err := pixedit.NewSession(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	cmds := mustParse(t, `
color #ff0000
down 0 0
move 10 0
up
tool eraser
down 5 0
up
key ctrl+z
`)
	if err := Run(context.Background(), s, cmds); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	red := pixedit.Color{R: 255, A: 255}
	for x := 0; x <= 10; x++ {
		if px, _ := s.Bitmap().Pixel(x, 0); px != red {
			t.Errorf("Pixel(%d,0) = %v, want red", x, px)
		}
	}
	if s.Tool() != pixedit.ToolEraser {
		t.Errorf("Tool() = %v, want eraser", s.Tool())
	}
	if !s.CanRedo() {
		t.Error("ctrl+z did not undo the erase")
	}
}

func TestRunScreenAndZoom(t *testing.T) {
	s, err := pixedit.NewSession(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	cmds := mustParse(t, "zoom 8\nsdown 9 1\nsmove 31 1\nleave\nmove 7 7\n")
	if err := Run(context.Background(), s, cmds); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for x := 0; x < 8; x++ {
		px, _ := s.Bitmap().Pixel(x, 0)
		if want := x >= 1 && x <= 3; (px == pixedit.Black) != want {
			t.Errorf("Pixel(%d,0) = %v", x, px)
		}
	}
	if px, _ := s.Bitmap().Pixel(7, 7); px != pixedit.Transparent {
		t.Error("move after leave painted")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"brush size", "brush 3", pixedit.ErrInvalidBrushSize},
		{"resize", "resize 0 4", pixedit.ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := pixedit.NewSession(4, 4)
			err := Run(context.Background(), s, mustParse(t, "down 1 1\nup\n"+tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), "line 3") {
				t.Errorf("error %q does not name line 3", err)
			}
		})
	}

	s, _ := pixedit.NewSession(4, 4)
	if err := Run(context.Background(), s, mustParse(t, "zoom 3")); err == nil {
		t.Error("zoom 3 accepted")
	}
}

func TestRunCancelled(t *testing.T) {
	s, _ := pixedit.NewSession(4, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, s, mustParse(t, "down 1 1\nup"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if s.CanUndo() {
		t.Error("cancelled run applied commands")
	}
}

func TestRunMalformedColorPaintsBlack(t *testing.T) {
	s, _ := pixedit.NewSession(4, 4)
	if err := Run(context.Background(), s, mustParse(t, "color #zzzzzz\ndown 2 2\nup")); err != nil {
		t.Fatal(err)
	}
	if px, _ := s.Bitmap().Pixel(2, 2); px != pixedit.Black {
		t.Errorf("Pixel(2,2) = %v, want black", px)
	}
}

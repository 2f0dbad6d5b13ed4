// Command pixedit replays an editor event script against a fresh canvas and
// exports the resulting asset.
//
// Usage:
//
//	pixedit -width 32 -height 32 -script strokes.txt -name "Hero Sprite" -preview preview.png
//
// The asset is written as <dir>/<name>.png unless -out names a file; the
// extension of -out selects PNG, BMP, TIFF or PDF.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/pixedit"
	"github.com/gogpu/pixedit/internal/script"
	"github.com/gogpu/pixedit/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pixedit:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width   = flag.Int("width", pixedit.DefaultWidth, "canvas width (clamped to 1..1024)")
		height  = flag.Int("height", pixedit.DefaultHeight, "canvas height (clamped to 1..1024)")
		input   = flag.String("in", "", "seed the canvas from an existing image")
		scripts = flag.String("script", "", "event script to replay (- for stdin)")
		output  = flag.String("out", "", "output file; extension selects png, bmp, tif or pdf")
		name    = flag.String("name", render.DefaultAssetName, "asset name used when -out is empty")
		dir     = flag.String("dir", ".", "output directory used when -out is empty")
		opaque  = flag.Bool("opaque", false, "composite over white instead of keeping transparency")
		preview = flag.String("preview", "", "also write a zoomed PNG preview to this file")
		zoom    = flag.Int("zoom", pixedit.DefaultZoom, "preview zoom")
		grid    = flag.Bool("grid", true, "draw the pixel grid in the preview")
		depth   = flag.Int("history", pixedit.DefaultHistoryDepth, "undo depth")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := pixedit.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := pixedit.NewSession(
		pixedit.ClampDimension(*width), pixedit.ClampDimension(*height),
		pixedit.WithHistoryDepth(*depth),
		pixedit.WithZoom(*zoom),
	)
	if err != nil {
		return err
	}

	if *input != "" {
		img, err := loadImage(*input)
		if err != nil {
			return err
		}
		if err := s.Load(img); err != nil {
			return err
		}
	}

	if *scripts != "" {
		cmds, err := readScript(*scripts)
		if err != nil {
			return err
		}
		if err := script.Run(ctx, s, cmds); err != nil {
			return err
		}
		log.Info("script replayed", "commands", len(cmds), "can_undo", s.CanUndo(), "can_redo", s.CanRedo())
	}

	path := *output
	if path == "" {
		path = filepath.Join(*dir, render.AssetFileName(*name, render.FormatPNG))
	}
	format, err := render.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := writeFile(path, func(w io.Writer) error {
		return render.Encode(w, s.Bitmap(), format, render.ExportOptions{
			Transparent: !*opaque,
			Title:       *name,
		})
	}); err != nil {
		return err
	}
	log.Info("asset exported", "path", path, "width", s.Width(), "height", s.Height())

	if *preview != "" {
		view := render.View(s.Bitmap(), render.Options{
			Zoom:        s.Viewport().Zoom,
			Grid:        *grid,
			Transparent: !*opaque,
		})
		if err := writeFile(*preview, func(w io.Writer) error {
			return png.Encode(w, view)
		}); err != nil {
			return err
		}
		log.Info("preview written", "path", *preview, "zoom", s.Viewport().Zoom)
	}
	return nil
}

func readScript(path string) ([]script.Command, error) {
	if path == "-" {
		return script.Parse(os.Stdin)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return script.Parse(f)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// writeFile creates path and closes it, reporting the first error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		return errors.Join(err, f.Close())
	}
	return f.Close()
}

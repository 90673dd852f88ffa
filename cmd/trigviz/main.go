// Command trigviz opens a window with the interactive unit-circle diagram.
//
// Press and drag inside the first quadrant to change the angle. Escape
// closes the window.
//
// Rendering is event-driven: the window redraws at VSync only while the
// pointer is held, and sits idle otherwise.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/trigviz"
	"github.com/gogpu/trigviz/draw/raster"
	"github.com/gogpu/trigviz/frame"
)

func main() {
	def := frame.DefaultLayout()
	var (
		width   = flag.Int("width", def.Width, "window width")
		height  = flag.Int("height", def.Height, "window height")
		padding = flag.Float64("padding", def.Padding, "padding around the axes in pixels")
		tick    = flag.Float64("tick", def.TickIncrement, "tick increment, must divide 1.0")
		angle   = flag.Float64("angle", trigviz.DefaultAngle, "initial angle in radians")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	trigviz.SetLogger(logger)

	layout := frame.FitLayout(*width, *height, *padding, *tick)
	v, err := trigviz.New(trigviz.WithLayout(layout), trigviz.WithInitialAngle(*angle))
	if err != nil {
		slog.Error("invalid layout", "error", err)
		os.Exit(1)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("Trigonometry").
		WithSize(*width, *height).
		WithContinuousRender(false))

	var canvas *ggcanvas.Canvas
	var anim *gogpu.AnimationToken
	surface := raster.NewSurface()
	last := time.Now()

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				slog.Error("failed to create canvas", "error", err)
				os.Exit(1)
			}
			slog.Info("canvas created", "backend", dc.Backend(), "width", w, "height", h)
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				slog.Warn("canvas resize failed", "error", err)
			}
		}

		now := time.Now()
		list := v.Tick(now.Sub(last))
		last = now
		if err := canvas.Draw(func(cc *gg.Context) {
			surface.SetContext(cc)
			if err := list.Playback(surface); err != nil {
				slog.Warn("playback failed", "error", err)
			}
		}); err != nil {
			slog.Warn("draw failed", "error", err)
		}

		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			slog.Warn("render failed", "error", err)
		}
	})

	// The drag keeps an animation token alive so every move is drawn.
	startDrag := func() {
		if anim == nil {
			anim = app.StartAnimation()
		}
	}
	stopDrag := func() {
		if anim != nil {
			anim.Stop()
			anim = nil
		}
	}

	var events gpucontext.EventSource = app.EventSource()
	if pes, ok := events.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(func(ev gpucontext.PointerEvent) {
			if !ev.IsPrimary {
				return
			}
			switch ev.Type {
			case gpucontext.PointerDown:
				if ev.Button != gpucontext.ButtonLeft {
					return
				}
				v.Router().Press(ev.X, ev.Y)
				startDrag()
			case gpucontext.PointerUp, gpucontext.PointerCancel:
				v.Router().Release()
				stopDrag()
			case gpucontext.PointerMove:
				v.Router().Move(ev.X, ev.Y)
			}
		})
	} else {
		events.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
			if button != gpucontext.MouseButtonLeft {
				return
			}
			v.Router().Press(x, y)
			startDrag()
		})
		events.OnMouseRelease(func(button gpucontext.MouseButton, _, _ float64) {
			if button != gpucontext.MouseButtonLeft {
				return
			}
			v.Router().Release()
			stopDrag()
		})
		events.OnMouseMove(func(x, y float64) {
			v.Router().Move(x, y)
		})
	}

	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			app.Quit()
		}
	})

	app.OnClose(func() {
		stopDrag()
		_ = surface.Close()
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		slog.Error("app failed", "error", err)
		os.Exit(1)
	}
}

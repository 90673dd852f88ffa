// Command trigviz-render renders one frame of the diagram to a PNG file.
//
// The angle comes from -angle, or from a pointer drag replayed through the
// input router:
//
//	trigviz-render -output frame.png -angle 0.6
//	trigviz-render -output frame.png -drag "400,300;450,200"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/trigviz"
	"github.com/gogpu/trigviz/draw"
	_ "github.com/gogpu/trigviz/draw/raster" // Register the raster surface
	"github.com/gogpu/trigviz/frame"
	"github.com/gogpu/trigviz/trig"
)

// frameTime is the nominal time step between replayed drag points.
const frameTime = time.Second / 60

func main() {
	def := frame.DefaultLayout()
	var (
		width   = flag.Int("width", def.Width, "image width")
		height  = flag.Int("height", def.Height, "image height")
		padding = flag.Float64("padding", def.Padding, "padding around the axes in pixels")
		tick    = flag.Float64("tick", def.TickIncrement, "tick increment, must divide 1.0")
		angle   = flag.Float64("angle", trigviz.DefaultAngle, "angle in radians")
		drag    = flag.String("drag", "", "pointer drag as x,y points separated by ';'")
		output  = flag.String("output", "trigviz.png", "output file")
		surface = flag.String("surface", "raster", "surface to render with")
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

	if err := run(*width, *height, *padding, *tick, *angle, *drag, *output, *surface); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(width, height int, padding, tick, angle float64, drag, output, surfaceName string) error {
	points, err := parseDrag(drag)
	if err != nil {
		return err
	}

	v, err := trigviz.New(
		trigviz.WithLayout(frame.FitLayout(width, height, padding, tick)),
		trigviz.WithInitialAngle(angle),
	)
	if err != nil {
		return err
	}

	list := replay(v, points)

	s, err := draw.NewSurface(surfaceName)
	if err != nil {
		return err
	}
	fs, ok := s.(draw.FileSurface)
	if !ok {
		return fmt.Errorf("surface %q cannot save to a file", surfaceName)
	}
	if err := list.Playback(s); err != nil {
		return err
	}
	if err := fs.SaveToFile(output); err != nil {
		return err
	}

	slog.Info("frame saved",
		"path", output,
		"width", list.Width(), "height", list.Height(),
		"angle", v.Angle(), "degrees", trig.Degrees(v.Angle()),
		"commands", list.Len())
	return nil
}

// replay presses at the first point, moves through the rest and releases,
// ticking once per event. With no points it ticks once.
func replay(v *trigviz.Visualizer, points []point) *draw.List {
	if len(points) == 0 {
		return v.Tick(frameTime)
	}

	r := v.Router()
	r.Press(points[0].x, points[0].y)
	v.Tick(frameTime)
	for _, p := range points[1:] {
		r.Move(p.x, p.y)
		v.Tick(frameTime)
	}
	r.Release()
	return v.Tick(frameTime)
}

// Package trigviz draws an interactive unit-circle diagram of the six
// trigonometric ratios.
//
// # Overview
//
// A Visualizer owns the angle, a coordinate frame and a scene. Pointer
// events are fed to its input.Router; once per frame Tick folds the
// pointer into the angle and returns the frame's draw commands:
//
//	v, err := trigviz.New()
//	if err != nil {
//		return err
//	}
//
//	v.Router().Press(400, 200)
//	list := v.Tick(16 * time.Millisecond)
//
//	s, _ := draw.NewSurface("raster")
//	_ = list.Playback(s)
//
// # Coordinate System
//
// The canvas uses screen coordinates: origin at the top-left, Y growing
// down. The diagram's origin sits at the bottom-left corner inside the
// padding, with 1.0 on each axis at the far end of the axis.
//
// # Angle
//
// While the pointer is held inside the first quadrant the angle follows
// it; otherwise the angle keeps its last value. The angle is never
// wrapped.
//
// # Architecture
//
// The library is organized into:
//   - frame: layout and coordinate mapping
//   - angle: angle state and the pointer-driven update
//   - input: pointer event routing
//   - trig: pure geometry of the ratios
//   - scene: ordered draw commands per frame
//   - draw: command types, surfaces and playback
//   - draw/raster: gg-backed surface
package trigviz

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package frame

import "errors"

// Sentinel errors returned by New.
var (
	// ErrCanvasTooSmall is returned when the canvas has no room left for
	// the axes once padding is removed.
	ErrCanvasTooSmall = errors.New("frame: canvas too small for padding")

	// ErrInvalidTick is returned when the tick increment does not divide
	// 1.0 evenly or a tick dimension is not positive.
	ErrInvalidTick = errors.New("frame: invalid tick layout")

	// ErrInvalidPadding is returned for negative or non-finite padding.
	ErrInvalidPadding = errors.New("frame: invalid padding")
)

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadPoint = errors.New("bad drag point")

type point struct {
	x, y float64
}

// parseDrag parses "x,y;x,y;..." into points. Empty input yields none.
func parseDrag(s string) ([]point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var points []point
	for _, field := range strings.Split(s, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(field), ",")
		if !ok {
			return nil, fmt.Errorf("%w %q: want x,y", errBadPoint, field)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errBadPoint, field, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errBadPoint, field, err)
		}
		points = append(points, point{x: x, y: y})
	}
	return points, nil
}

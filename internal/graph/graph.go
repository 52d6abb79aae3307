// Package graph draws utilization ratios as fixed-width text bars.
package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultLength is the bar width used when none is configured
const DefaultLength = 20

const (
	fill  = "="
	empty = " "
)

// ErrOutOfRange is returned for ratios outside [0, 1] and non-positive lengths
var ErrOutOfRange = errors.New("out of range")

// Render returns a bar of exactly length characters whose filled part is
// ratio*length rounded to the nearest cell, ties to even.
func Render(ratio float64, length int) (string, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return "", fmt.Errorf("ratio %v: %w: must be between 0.0 and 1.0", ratio, ErrOutOfRange)
	}
	if length < 1 {
		return "", fmt.Errorf("length %d: %w: must be at least 1", length, ErrOutOfRange)
	}

	filled := Filled(ratio, length)
	return strings.Repeat(fill, filled) + strings.Repeat(empty, length-filled), nil
}

// Filled returns the number of fill cells Render draws for ratio.
func Filled(ratio float64, length int) int {
	return int(math.RoundToEven(ratio * float64(length)))
}

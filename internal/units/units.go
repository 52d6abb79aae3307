// Package units renders kilobyte counts for display.
package units

import (
	"fmt"
	"strconv"
)

// DefaultDecimals is the precision of human-readable values
const DefaultDecimals = 2

var suffixes = []string{"KiB", "MiB", "GiB", "TiB", "PiB"}

// Raw renders kb as a plain kilobyte count, e.g. "2048 kB".
func Raw(kb uint64) string {
	return strconv.FormatUint(kb, 10) + " kB"
}

// Human renders kb in binary units. A value is only promoted to the next
// unit once it is strictly greater than 1024, so 1024 stays "1024.00 KiB".
// PiB is the largest unit; larger values are shown as many PiB.
func Human(kb uint64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	value := float64(kb)
	i := 0
	for value > 1024 && i < len(suffixes)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.*f %s", decimals, value, suffixes[i])
}

// Format renders kb as Human with DefaultDecimals when human is set and as
// Raw otherwise.
func Format(kb uint64, human bool) string {
	if human {
		return Human(kb, DefaultDecimals)
	}
	return Raw(kb)
}

// Formatter carries the display choice made on the command line
type Formatter struct {
	Human    bool
	Decimals int
}

// NewFormatter returns a Formatter using DefaultDecimals
func NewFormatter(human bool) Formatter {
	return Formatter{Human: human, Decimals: DefaultDecimals}
}

// Format renders kb according to f
func (f Formatter) Format(kb uint64) string {
	if f.Human {
		return Human(kb, f.Decimals)
	}
	return Raw(kb)
}

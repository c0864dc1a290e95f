// internal/util/util.go
// Package util holds small file and string helpers shared by the renderers,
// the table browser and the commands.
package util

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions, creating missing
// parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// TruncateToWidth truncates each line of a string to a specified width in runes.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = TruncateRunes(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return Max(lo, Min(v, hi))
}

// Fraction returns where v sits between lo and hi, 0 at lo and 1 at hi.
// Both ends are halved before subtracting so ranges spanning most of the
// float64 line stay finite. An empty range gives 0.5.
func Fraction(v, lo, hi float64) float64 {
	span := hi/2 - lo/2
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0.5
	}
	f := (v/2 - lo/2) / span
	if math.IsNaN(f) {
		return 0.5
	}
	return math.Max(0, math.Min(f, 1))
}

// Lerp returns the point t of the way from lo to hi without computing hi-lo.
func Lerp(lo, hi, t float64) float64 {
	return lo*(1-t) + hi*t
}

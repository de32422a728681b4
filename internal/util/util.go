// internal/util/util.go
package util

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions, creating parent
// directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	if maxRunes <= 0 {
		return "…"
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// Bar draws a horizontal bar of full blocks for a percentage in [0,100]
// scaled to width cells. NaN and negative input draw nothing.
func Bar(percentage float64, width int) string {
	if width <= 0 || math.IsNaN(percentage) || percentage <= 0 {
		return ""
	}
	if percentage > 100 {
		percentage = 100
	}
	cells := int(math.Round(percentage / 100 * float64(width)))
	return strings.Repeat("█", cells)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package model

import (
	"strconv"
	"strings"
)

// FormatSeconds prints a budget the way the game announces it: at least one
// decimal place, no trailing zeros beyond that.
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

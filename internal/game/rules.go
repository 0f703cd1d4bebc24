package game

import (
	"time"
	"unicode"
)

// ElapsedSeconds truncates d to whole seconds.
func ElapsedSeconds(d time.Duration) int {
	return int(d / time.Second)
}

// TimedOut reports whether a response took longer than the budget. Only whole
// seconds count, so a response equal to the budget is still in time and a
// negative budget can never be met.
func TimedOut(elapsed time.Duration, budget float64) bool {
	return float64(ElapsedSeconds(elapsed)) > budget
}

// Matches compares letters ignoring case.
func Matches(target, typed rune) bool {
	return unicode.ToLower(target) == unicode.ToLower(typed)
}

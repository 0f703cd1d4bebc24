// Package model defines shared data structures.
package model

import "time"

// Game defaults.
const (
	DefaultResponseTime = 3.0
	DefaultWinningScore = 5
)

// Difficulty is the menu choice that decides how fast the timer shrinks.
type Difficulty int

// Difficulty levels as numbered in the menu.
const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// DifficultyFromChoice maps a menu number to a difficulty.
func DifficultyFromChoice(choice int) (Difficulty, bool) {
	switch Difficulty(choice) {
	case Easy, Medium, Hard:
		return Difficulty(choice), true
	default:
		return 0, false
	}
}

// Step returns the seconds removed from the timer after each hit.
func (d Difficulty) Step() float64 {
	switch d {
	case Medium:
		return 0.5
	case Hard:
		return 0.75
	default:
		return 0.25
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Outcome is the state of a session.
type Outcome int

// Session states.
const (
	Playing Outcome = iota
	Won
	LostTimeout
	LostWrongLetter
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case LostTimeout:
		return "timeout"
	case LostWrongLetter:
		return "wrong letter"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o != Playing
}

// Round captures a single finished round.
type Round struct {
	Number  int
	Target  rune
	Typed   rune
	Elapsed time.Duration
	Budget  float64
	Outcome Outcome
	Hit     bool
}

// InputMode selects how keys are read from the terminal.
type InputMode string

// Supported input modes.
const (
	InputLine InputMode = "line"
	InputKey  InputMode = "key"
)

// Config defines play settings.
type Config struct {
	Input   InputMode
	Color   bool
	Summary bool
	Seed    int64
}

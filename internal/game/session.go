// Package game runs a TapIt session: the menu, the timed rounds and the
// final result.
package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/verte-zerg/tapit/internal/clock"
	"github.com/verte-zerg/tapit/internal/console"
	"github.com/verte-zerg/tapit/internal/generator"
	"github.com/verte-zerg/tapit/internal/input"
	"github.com/verte-zerg/tapit/internal/model"
	"github.com/verte-zerg/tapit/internal/stats"
)

// ErrSessionFinished is returned when Run is called on a used session.
var ErrSessionFinished = errors.New("session already played")

const separator = "---------------------------"

// Session holds the state of one game. A Session is played once.
type Session struct {
	id           string
	score        int
	budget       float64
	difficulty   model.Difficulty
	winningScore int
	target       rune
	typed        rune
	state        model.Outcome
	rounds       []model.Round

	difficultySet bool
	started       bool

	in    input.Provider
	out   *console.Printer
	gen   *generator.Generator
	clock clock.Clock
}

// NewSession returns a session with default settings.
func NewSession(in input.Provider, out *console.Printer, gen *generator.Generator, clk clock.Clock) *Session {
	return &Session{
		id:           uuid.NewString(),
		budget:       model.DefaultResponseTime,
		difficulty:   model.Easy,
		winningScore: model.DefaultWinningScore,
		state:        model.Playing,
		in:           in,
		out:          out,
		gen:          gen,
		clock:        clk,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Budget returns the response time budget in seconds.
func (s *Session) Budget() float64 { return s.budget }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() model.Difficulty { return s.difficulty }

// Step returns the seconds removed from the budget after each hit.
func (s *Session) Step() float64 { return s.difficulty.Step() }

// WinningScore returns the score needed to win.
func (s *Session) WinningScore() int { return s.winningScore }

// State returns the session outcome so far.
func (s *Session) State() model.Outcome { return s.state }

// Rounds returns the finished rounds.
func (s *Session) Rounds() []model.Round {
	out := make([]model.Round, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// Play shows the menu and then runs the round loop.
func (s *Session) Play() (model.Outcome, error) {
	if err := s.Menu(); err != nil {
		return s.state, err
	}
	return s.Run()
}

// Menu prints the instructions and lets the player pick a difficulty.
func (s *Session) Menu() error {
	if s.started {
		return ErrSessionFinished
	}
	for _, line := range []string{"*************", "*************", "-- TapIt! --", "*************", "*************"} {
		s.out.Banner(line)
	}
	s.out.Line("Anthony Mazzie, 2020")
	s.out.Line(separator)
	s.out.Line("Instructions:")
	s.out.Line("1. A random letter appears on the screen.")
	s.out.Line("2. Tap the corresponding letter on your keyboard before the time runs out.")
	s.out.Line(fmt.Sprintf("3. Timer starts at %s seconds and reduces each round.", model.FormatSeconds(s.budget)))
	s.out.Line("4. Each successful letter tap will increase your score by 1.")
	s.out.Line("5. If you tap an incorrect letter or your response time exceeds the timer, you lose.")
	s.out.Line(fmt.Sprintf("6. A score of %d wins the game, good luck!", s.winningScore))
	s.out.Line(separator)

	answer, err := s.readEntry(func() { s.out.PromptLine("Optional: select difficulty?: (Y/N)") })
	if err != nil {
		return err
	}
	if r, _ := input.FirstRune(answer); r == 'Y' || r == 'y' {
		s.out.Line("Easy - 1")
		s.out.Line("Medium - 2")
		s.out.Line("Hard - 3")
		choice, err := s.readEntry(func() { s.out.Prompt("Enter desired difficulty: ") })
		if err != nil {
			return err
		}
		if n, err := strconv.Atoi(choice); err == nil {
			s.SelectDifficulty(n)
		}
	}

	s.out.Line(separator)
	if _, err := s.readEntry(func() {
		s.out.PromptLine("Press Any Button to Begin!")
		s.out.Line(separator)
	}); err != nil {
		return err
	}
	s.out.Info("Game started!")
	return s.out.Err()
}

// SelectDifficulty applies a menu choice of 1, 2 or 3. Other values, a
// second selection or a selection after play started are ignored.
func (s *Session) SelectDifficulty(choice int) bool {
	if s.started || s.difficultySet {
		return false
	}
	d, ok := model.DifficultyFromChoice(choice)
	if !ok {
		return false
	}
	s.difficulty = d
	s.difficultySet = true
	s.out.Line(fmt.Sprintf("Difficulty set to %s.", d))
	return true
}

// Run plays rounds until the player wins or loses. Input and output errors
// end the session immediately and are returned.
func (s *Session) Run() (model.Outcome, error) {
	if s.started {
		return s.state, ErrSessionFinished
	}
	s.started = true

	for !s.state.Terminal() {
		if err := s.playRound(); err != nil {
			return s.state, err
		}
	}
	s.out.Score("Final score", s.score)
	return s.state, s.out.Err()
}

// Summary writes the per-round table for the finished session.
func (s *Session) Summary(w io.Writer) error {
	return stats.RenderRounds(w, s.id, s.rounds)
}

func (s *Session) playRound() error {
	s.target = s.gen.Letter()
	s.out.Letter("Random letter generated is ->: ", s.target)

	start := s.clock.Now()
	budget := s.budget
	s.out.Info("Timer starting, you have %s seconds!", model.FormatSeconds(budget))

	entry, err := s.readEntry(func() { s.out.Prompt("Tap the letter!: ") })
	if err != nil {
		return err
	}
	end := s.clock.Now()
	typed, err := input.FirstRune(entry)
	if err != nil {
		return err
	}
	s.typed = typed
	elapsed := end.Sub(start)

	round := model.Round{
		Number:  len(s.rounds) + 1,
		Target:  s.target,
		Typed:   s.typed,
		Elapsed: elapsed,
		Budget:  budget,
	}

	switch {
	case TimedOut(elapsed, budget):
		s.state = model.LostTimeout
		s.out.Line(fmt.Sprintf("User response time: %d", ElapsedSeconds(elapsed)))
		s.out.Line(fmt.Sprintf("Game response time: %s", model.FormatSeconds(budget)))
		s.out.Failure("You took too long, game over!")
	case !Matches(s.target, s.typed):
		s.state = model.LostWrongLetter
		s.out.Failure("Letters do not match, you lose!")
	default:
		s.score++
		round.Hit = true
		if s.score >= s.winningScore {
			s.state = model.Won
			s.out.Success("You win!")
			break
		}
		s.budget -= s.difficulty.Step()
		s.out.Score("Score", s.score)
	}

	round.Outcome = s.state
	s.rounds = append(s.rounds, round)
	return s.out.Err()
}

// readEntry prompts until the provider returns a usable entry.
func (s *Session) readEntry(prompt func()) (string, error) {
	for {
		prompt()
		if err := s.out.Err(); err != nil {
			return "", err
		}
		entry, err := s.in.Next()
		if err == nil {
			return entry, nil
		}
		var inputErr *input.InputError
		if errors.As(err, &inputErr) {
			continue
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}

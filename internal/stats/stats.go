// Package stats summarizes the rounds of a finished session.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/tapit/internal/model"
)

// ResponseMetrics returns the mean response time over all rounds and the
// share of rounds that scored.
func ResponseMetrics(rounds []model.Round) (avg time.Duration, accuracy float64) {
	if len(rounds) == 0 {
		return 0, 0
	}
	var total time.Duration
	hits := 0
	for _, r := range rounds {
		total += r.Elapsed
		if r.Hit {
			hits++
		}
	}
	count := len(rounds)
	return total / time.Duration(count), float64(hits) / float64(count)
}

// RenderRounds prints a per-round table followed by averages.
func RenderRounds(w io.Writer, sessionID string, rounds []model.Round) error {
	if _, err := fmt.Fprintf(w, "Session %s\n", sessionID); err != nil {
		return err
	}
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}

	for _, line := range roundTable(rounds) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	avg, acc := ResponseMetrics(rounds)
	if _, err := fmt.Fprintf(w, "Avg response: %d ms\n", avg.Milliseconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", acc*100); err != nil {
		return err
	}
	return nil
}

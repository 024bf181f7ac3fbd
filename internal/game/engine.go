package game

import (
	"errors"
	"fmt"
)

const (
	BallsPerOver = 6
	MaxWickets   = 10
)

// Rejected-operation errors for the ball transition. Both are operational:
// the caller gets a 400 and no state is persisted.
var (
	// ErrMatchCompleted is returned when a ball arrives for a match whose
	// status is already completed.
	ErrMatchCompleted = errors.New("game already completed")

	// ErrOversExhausted is returned when a new over would exceed the match's
	// over limit. Completion detection should have closed the match one ball
	// earlier, so this guards against stale matches receiving late input.
	ErrOversExhausted = errors.New("game already completed! All overs bowled")
)

// Outcome classifies how a ball transition left the match.
type Outcome string

const (
	OutcomeNone           Outcome = ""               // match still in progress
	OutcomeWin            Outcome = "win"            // target reached
	OutcomeAllOut         Outcome = "all_out"        // ten wickets down
	OutcomeOversCompleted Outcome = "overs_complete" // final ball of the final over, target not reached
)

// BallResult carries the derived state returned to the caller after a ball
// is applied.
type BallResult struct {
	TotalRuns    int
	TotalWickets int
	OversBowled  string
	Ball         Ball
}

// ApplyBall appends one ball to the match and re-evaluates completion. It
// mutates only the in-memory match; persisting the result is the caller's
// job, so a failed precondition never leaves partial state behind.
//
// Totals are recomputed from scratch by folding over every ball of every
// over rather than kept as running counters. That is deliberate: the fold is
// cheap at this scale and self-heals if the stored overs were ever edited
// out of band. Do not replace it with incremental counters without a
// measured performance need.
func ApplyBall(m *Match, runs int, wicket bool, angle *float64) (BallResult, Outcome, error) {
	if m.Status != StatusInProgress {
		return BallResult{}, OutcomeNone, ErrMatchCompleted
	}

	// Roll over to a new over when there is none yet or the last one is full.
	if len(m.Overs) == 0 || len(m.Overs[len(m.Overs)-1].Balls) >= BallsPerOver {
		if len(m.Overs) >= m.OversLimit {
			return BallResult{}, OutcomeNone, ErrOversExhausted
		}
		m.Overs = append(m.Overs, Over{OverNumber: len(m.Overs) + 1})
	}

	active := &m.Overs[len(m.Overs)-1]
	ball := Ball{
		BallNumber: len(active.Balls) + 1,
		Runs:       runs,
		Wicket:     wicket,
		Angle:      angle,
	}
	active.Balls = append(active.Balls, ball)

	totalRuns, totalWickets := Totals(m.Overs)

	// Completion checks, first match wins: target beats all-out beats
	// running out of overs.
	var outcome Outcome
	switch {
	case totalRuns >= m.TargetRuns:
		outcome = OutcomeWin
	case totalWickets >= MaxWickets:
		outcome = OutcomeAllOut
	case len(m.Overs) == m.OversLimit && len(active.Balls) == BallsPerOver:
		outcome = OutcomeOversCompleted
	}
	if outcome != OutcomeNone {
		m.Status = StatusCompleted
	}

	return BallResult{
		TotalRuns:    totalRuns,
		TotalWickets: totalWickets,
		OversBowled:  OversBowled(m.Overs),
		Ball:         ball,
	}, outcome, nil
}

// Totals folds over every ball of every over and returns the match's run and
// wicket counts.
func Totals(overs Overs) (totalRuns, totalWickets int) {
	for _, over := range overs {
		for _, ball := range over.Balls {
			totalRuns += ball.Runs
			if ball.Wicket {
				totalWickets++
			}
		}
	}
	return totalRuns, totalWickets
}

// OversBowled renders the progress display value "completed.ballsInCurrent".
// A just-filled over counts as completed, so six balls into the third over
// reads "3.0", never "2.6".
func OversBowled(overs Overs) string {
	if len(overs) == 0 {
		return "0.0"
	}
	lastLen := len(overs[len(overs)-1].Balls)
	completed := len(overs)
	if lastLen < BallsPerOver {
		completed--
	}
	return fmt.Sprintf("%d.%d", completed, lastLen%BallsPerOver)
}

// ResultMessage formats the user-facing message for a ball submission.
func ResultMessage(outcome Outcome, targetRuns, totalRuns int) string {
	switch outcome {
	case OutcomeWin:
		return "Congratulations! You reached the target! 🏆"
	case OutcomeAllOut:
		return "All Out! You lost all your wickets. 🏏"
	case OutcomeOversCompleted:
		return fmt.Sprintf("Game Over! You needed %d runs, but scored %d. 🏏", targetRuns, totalRuns)
	default:
		return "Score updated successfully"
	}
}

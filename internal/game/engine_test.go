package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(oversLimit, targetRuns int) *Match {
	return &Match{
		MatchCode:       NewMatchCode(),
		PlayerID:        1,
		TeamID:          1,
		TeamName:        "Street Strikers",
		DifficultyLevel: DifficultyMedium,
		OversLimit:      oversLimit,
		TargetRuns:      targetRuns,
		Overs:           Overs{},
		Status:          StatusInProgress,
	}
}

// applyBalls feeds a sequence of (runs, wicket) balls and fails the test on
// any rejection.
func applyBalls(t *testing.T, m *Match, balls ...Ball) (BallResult, Outcome) {
	t.Helper()
	var (
		result  BallResult
		outcome Outcome
	)
	for _, b := range balls {
		var err error
		result, outcome, err = ApplyBall(m, b.Runs, b.Wicket, b.Angle)
		require.NoError(t, err)
	}
	return result, outcome
}

func TestApplyBall_FirstBallOpensFirstOver(t *testing.T) {
	t.Parallel()

	m := newTestMatch(2, 50)
	angle := 42.5
	result, outcome, err := ApplyBall(m, 4, false, &angle)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNone, outcome)
	assert.Equal(t, StatusInProgress, m.Status)
	require.Len(t, m.Overs, 1)
	assert.Equal(t, 1, m.Overs[0].OverNumber)
	require.Len(t, m.Overs[0].Balls, 1)
	assert.Equal(t, 1, result.Ball.BallNumber)
	assert.Equal(t, 4, result.Ball.Runs)
	require.NotNil(t, result.Ball.Angle)
	assert.Equal(t, 42.5, *result.Ball.Angle)
	assert.Equal(t, 4, result.TotalRuns)
	assert.Equal(t, 0, result.TotalWickets)
	assert.Equal(t, "0.1", result.OversBowled)
}

func TestApplyBall_SeventhBallStartsNewOver(t *testing.T) {
	t.Parallel()

	m := newTestMatch(2, 500)
	for i := 0; i < 7; i++ {
		_, _, err := ApplyBall(m, 1, false, nil)
		require.NoError(t, err)
	}

	require.Len(t, m.Overs, 2)
	assert.Len(t, m.Overs[0].Balls, 6)
	require.Len(t, m.Overs[1].Balls, 1)
	assert.Equal(t, 2, m.Overs[1].OverNumber)
	assert.Equal(t, 1, m.Overs[1].Balls[0].BallNumber)
}

func TestApplyBall_TargetReachedWinsEarly(t *testing.T) {
	t.Parallel()

	// oversLimit=2, targetRuns=10: a four then a six reaches the target on
	// ball two, well before the over is full.
	m := newTestMatch(2, 10)
	_, outcome := applyBalls(t, m,
		Ball{Runs: 4},
		Ball{Runs: 6},
	)

	assert.Equal(t, OutcomeWin, outcome)
	assert.Equal(t, StatusCompleted, m.Status)
	require.Len(t, m.Overs, 1)
	assert.Len(t, m.Overs[0].Balls, 2)
	assert.Contains(t, ResultMessage(outcome, m.TargetRuns, 10), "reached the target")
}

func TestApplyBall_OversCompletedIsALoss(t *testing.T) {
	t.Parallel()

	// oversLimit=1, targetRuns=100: six dot balls exhaust the innings.
	m := newTestMatch(1, 100)
	var (
		result  BallResult
		outcome Outcome
	)
	for i := 0; i < 6; i++ {
		var err error
		result, outcome, err = ApplyBall(m, 0, false, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, OutcomeOversCompleted, outcome)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, 0, result.TotalRuns)
	assert.Equal(t, "1.0", result.OversBowled)
	assert.Equal(t, "Game Over! You needed 100 runs, but scored 0. 🏏", ResultMessage(outcome, m.TargetRuns, result.TotalRuns))
}

func TestApplyBall_TenWicketsAllOut(t *testing.T) {
	t.Parallel()

	// Plenty of overs and a distant target: ten wickets end the match on
	// their own.
	m := newTestMatch(50, 1000)
	var outcome Outcome
	for i := 0; i < 10; i++ {
		var err error
		_, outcome, err = ApplyBall(m, 0, true, nil)
		require.NoError(t, err)
		if i < 9 {
			require.Equal(t, OutcomeNone, outcome)
			require.Equal(t, StatusInProgress, m.Status)
		}
	}

	assert.Equal(t, OutcomeAllOut, outcome)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Contains(t, ResultMessage(outcome, m.TargetRuns, 0), "All Out")
}

func TestApplyBall_TargetBeatsOversOnFinalBall(t *testing.T) {
	t.Parallel()

	// The final ball of the final over also reaches the target: the win
	// outcome takes precedence over overs-completed.
	m := newTestMatch(1, 6)
	for i := 0; i < 5; i++ {
		_, _, err := ApplyBall(m, 1, false, nil)
		require.NoError(t, err)
	}
	_, outcome, err := ApplyBall(m, 1, false, nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeWin, outcome)
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestApplyBall_WicketsBeatOversOnFinalBall(t *testing.T) {
	t.Parallel()

	// Nine wickets down, final ball of the final over takes the tenth
	// without reaching the target: all-out wins the precedence race.
	m := newTestMatch(2, 1000)
	for i := 0; i < 9; i++ {
		_, _, err := ApplyBall(m, 0, true, nil)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, _, err := ApplyBall(m, 0, false, nil)
		require.NoError(t, err)
	}
	_, outcome, err := ApplyBall(m, 0, true, nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeAllOut, outcome)
}

func TestApplyBall_CompletedMatchRejectsFurtherBalls(t *testing.T) {
	t.Parallel()

	m := newTestMatch(2, 10)
	applyBalls(t, m, Ball{Runs: 6}, Ball{Runs: 6})
	require.Equal(t, StatusCompleted, m.Status)

	before := len(m.Overs[0].Balls)
	_, _, err := ApplyBall(m, 4, false, nil)

	assert.ErrorIs(t, err, ErrMatchCompleted)
	assert.Len(t, m.Overs[0].Balls, before, "rejected ball must not be appended")
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestApplyBall_OversExhaustedGuard(t *testing.T) {
	t.Parallel()

	// A match whose overs are all bowled but whose status was never flipped
	// (out-of-band edit) must be rejected rather than grow an extra over.
	m := newTestMatch(1, 100)
	for i := 0; i < 6; i++ {
		_, _, err := ApplyBall(m, 0, false, nil)
		require.NoError(t, err)
	}
	m.Status = StatusInProgress // simulate stale data

	_, _, err := ApplyBall(m, 1, false, nil)

	assert.ErrorIs(t, err, ErrOversExhausted)
	assert.Len(t, m.Overs, 1)
	assert.Len(t, m.Overs[0].Balls, 6)
}

func TestApplyBall_InvariantsHoldAcrossLongSequence(t *testing.T) {
	t.Parallel()

	m := newTestMatch(3, 1000)
	runsPattern := []int{0, 1, 2, 4, 6, 3, 1, 0, 2}
	wantRuns := 0
	for i := 0; m.Status == StatusInProgress; i++ {
		runs := runsPattern[i%len(runsPattern)]
		result, _, err := ApplyBall(m, runs, false, nil)
		require.NoError(t, err)
		wantRuns += runs

		// Structural invariants after every ball.
		require.LessOrEqual(t, len(m.Overs), m.OversLimit)
		for j, over := range m.Overs {
			require.Equal(t, j+1, over.OverNumber)
			require.LessOrEqual(t, len(over.Balls), BallsPerOver)
			for k, ball := range over.Balls {
				require.Equal(t, k+1, ball.BallNumber)
			}
		}

		// The returned totals always equal an independently kept running sum.
		require.Equal(t, wantRuns, result.TotalRuns)
		recomputedRuns, recomputedWickets := Totals(m.Overs)
		require.Equal(t, result.TotalRuns, recomputedRuns)
		require.Equal(t, result.TotalWickets, recomputedWickets)
	}

	assert.Equal(t, 3, len(m.Overs))
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestOversBowled(t *testing.T) {
	t.Parallel()

	full := make([]Ball, 6)
	two := make([]Ball, 2)

	tests := []struct {
		name  string
		overs Overs
		want  string
	}{
		{name: "no overs", overs: Overs{}, want: "0.0"},
		{name: "two balls into the first over", overs: Overs{{OverNumber: 1, Balls: two}}, want: "0.2"},
		{name: "just-filled over reads as completed", overs: Overs{{OverNumber: 1, Balls: full}}, want: "1.0"},
		{
			name: "three full overs plus two balls",
			overs: Overs{
				{OverNumber: 1, Balls: full},
				{OverNumber: 2, Balls: full},
				{OverNumber: 3, Balls: full},
				{OverNumber: 4, Balls: two},
			},
			want: "3.2",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, OversBowled(tc.overs))
		})
	}
}

func TestNewMatchCode(t *testing.T) {
	t.Parallel()

	a := NewMatchCode()
	b := NewMatchCode()

	assert.True(t, len(a) > len("MATCH"))
	assert.Equal(t, "MATCH", a[:5])
	assert.NotEqual(t, a, b)
}

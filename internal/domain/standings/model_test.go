package standings

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profootgn/league-api/internal/domain/match"
)

func score(h, a int) (hs, as *int) {
	return &h, &a
}

func finished(home, away int64, h, a int) match.Match {
	hs, as := score(h, a)
	return match.Match{HomeClubID: home, AwayClubID: away, HomeScore: hs, AwayScore: as, Status: match.StatusFullTime}
}

func TestCompute_ThreeClubTable(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Hafia", 2: "Horoya", 3: "Kaloum"}
	matches := []match.Match{
		finished(1, 2, 2, 0), // Hafia beats Horoya
		finished(2, 3, 1, 1), // draw
		finished(3, 1, 0, 3), // Hafia wins away
	}

	rows := Compute(clubs, matches, false)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		Position: 1, ClubID: 1, ClubName: "Hafia",
		Played: 2, Wins: 2, GoalsFor: 5, GoalDiff: 5, Points: 6,
	}, rows[0])

	assert.Equal(t, int64(2), rows[1].ClubID)
	assert.Equal(t, 1, rows[1].Points)
	assert.Equal(t, -2, rows[1].GoalDiff)

	assert.Equal(t, int64(3), rows[2].ClubID)
	assert.Equal(t, 1, rows[2].Points)
	assert.Equal(t, -4, rows[2].GoalDiff)
	assert.Equal(t, 3, rows[2].Position)
}

func TestCompute_EveryClubSeeded(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Hafia", 2: "Horoya"}

	rows := Compute(clubs, nil, false)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Zero(t, r.Played)
		assert.Zero(t, r.Points)
	}
	// No matches played, alphabetical order decides.
	assert.Equal(t, "Hafia", rows[0].ClubName)
}

func TestCompute_GoalDiffBreaksEqualPoints(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Hafia", 2: "Horoya", 3: "Kaloum", 4: "Wakirya"}
	matches := []match.Match{
		finished(3, 1, 2, 2),
		finished(1, 3, 3, 1),
		finished(4, 2, 1, 1),
		finished(2, 4, 2, 1),
	}

	// 1 and 2 both on 4 points, 1 at +2 against 2 at +1; 3 and 4 both
	// on 1 point, 4 at -1 against 3 at -2.
	rows := Compute(clubs, matches, false)
	require.Len(t, rows, 4)
	assert.Equal(t, int64(1), rows[0].ClubID)
	assert.Equal(t, int64(2), rows[1].ClubID)
	assert.Equal(t, int64(4), rows[2].ClubID)
	assert.Equal(t, int64(3), rows[3].ClubID)
}

func TestCompute_GoalsForThenNameBreakEqualDiff(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Ashanti", 2: "Kaloum", 3: "hafia", 4: "Wakirya"}
	matches := []match.Match{
		finished(1, 3, 3, 1),
		finished(4, 1, 2, 0),
		finished(2, 4, 2, 0),
		finished(3, 2, 2, 0),
	}

	// Every club ends on 3 points with a zero difference. 1 and 3 scored
	// three, 2 and 4 scored two; inside each pair the case-insensitive
	// name decides.
	rows := Compute(clubs, matches, false)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Ashanti", "hafia", "Kaloum", "Wakirya"}, []string{
		rows[0].ClubName, rows[1].ClubName, rows[2].ClubName, rows[3].ClubName,
	})
}

func TestCompute_StatusFilter(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Hafia", 2: "Horoya"}
	hs, as := score(1, 0)
	matches := []match.Match{
		{HomeClubID: 1, AwayClubID: 2, HomeScore: hs, AwayScore: as, Status: match.StatusLive},
		{HomeClubID: 1, AwayClubID: 2, HomeScore: hs, AwayScore: as, Status: match.StatusScheduled},
		{HomeClubID: 1, AwayClubID: 2, HomeScore: hs, AwayScore: as, Status: match.StatusFinished},
	}

	rows := Compute(clubs, matches, false)
	assert.Equal(t, 1, rows[0].Played, "legacy finished spelling counts")

	rows = Compute(clubs, matches, true)
	assert.Equal(t, 2, rows[0].Played, "live flag pulls in the in-progress match")
}

func TestCompute_SkipsMissingScoresAndUnknownClubs(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "Hafia", 2: "Horoya"}
	hs, _ := score(1, 0)
	matches := []match.Match{
		{HomeClubID: 1, AwayClubID: 2, HomeScore: hs, Status: match.StatusFullTime},
		finished(1, 99, 4, 0),
	}

	rows := Compute(clubs, matches, false)
	for _, r := range rows {
		assert.Zero(t, r.Played)
	}
}

func TestCompute_OrderIndependent(t *testing.T) {
	t.Parallel()

	clubs := map[int64]string{1: "A", 2: "B", 3: "C", 4: "D"}
	matches := []match.Match{
		finished(1, 2, 2, 1),
		finished(3, 4, 0, 0),
		finished(2, 3, 1, 3),
		finished(4, 1, 2, 2),
		finished(1, 3, 1, 0),
		finished(2, 4, 5, 1),
	}

	want := Compute(clubs, matches, false)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]match.Match, len(matches))
		copy(shuffled, matches)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Compute(clubs, shuffled, false))
	}
}

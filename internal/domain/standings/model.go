package standings

import (
	"sort"
	"strings"

	"github.com/profootgn/league-api/internal/domain/match"
)

// Row is one league table line for a club.
type Row struct {
	Position     int
	ClubID       int64
	ClubName     string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
}

// Compute folds match results into a sorted league table. Every club in the
// seed map gets a row, even with zero matches played. Finished matches are
// always counted (both the FT and legacy FINISHED spellings); in-progress
// ones only when includeLive is set. A match missing a score, or referencing
// a club outside the seed set, is skipped.
//
// The fold is commutative: any permutation of the same matches yields the
// same table.
func Compute(clubNamesByID map[int64]string, matches []match.Match, includeLive bool) []Row {
	rowsByClub := make(map[int64]*Row, len(clubNamesByID))
	for id, name := range clubNamesByID {
		rowsByClub[id] = &Row{ClubID: id, ClubName: name}
	}

	for _, m := range matches {
		if !includeStatus(m.Status, includeLive) {
			continue
		}
		if m.HomeScore == nil || m.AwayScore == nil {
			continue
		}

		home, okHome := rowsByClub[m.HomeClubID]
		away, okAway := rowsByClub[m.AwayClubID]
		if !okHome || !okAway {
			// Data integrity issue upstream; never fail the whole table.
			continue
		}

		hs, as := *m.HomeScore, *m.AwayScore
		home.Played++
		away.Played++
		home.GoalsFor += hs
		home.GoalsAgainst += as
		away.GoalsFor += as
		away.GoalsAgainst += hs

		switch {
		case hs > as:
			home.Wins++
			home.Points += 3
			away.Losses++
		case hs < as:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	out := make([]Row, 0, len(rowsByClub))
	for _, row := range rowsByClub {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return strings.ToLower(a.ClubName) < strings.ToLower(b.ClubName)
	})

	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func includeStatus(status string, includeLive bool) bool {
	if match.IsFinishedStatus(status) {
		return true
	}
	return includeLive && match.IsLiveStatus(status)
}

package match

import (
	"fmt"
	"strings"
	"time"
)

// Match statuses. FT is canonical for a finished match; FINISHED is the
// legacy synonym still present on old rows and accepted everywhere.
const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusHalfTime  = "HT"
	StatusFullTime  = "FT"
	StatusFinished  = "FINISHED"
	StatusSuspended = "SUSPENDED"
	StatusPostponed = "POSTPONED"
	StatusCanceled  = "CANCELED"
)

// NormalizeStatus maps admin input and legacy spellings onto the canonical
// status set. Unknown input falls back to SCHEDULED.
func NormalizeStatus(value string) string {
	s := strings.ToUpper(strings.TrimSpace(value))
	switch s {
	case "":
		return StatusScheduled
	case "POST", "POSTPONE", StatusPostponed:
		return StatusPostponed
	case "CAN", "CANCELLED", StatusCanceled:
		return StatusCanceled
	case StatusFullTime, StatusFinished:
		return StatusFullTime
	case StatusHalfTime, "PAUSED":
		return StatusHalfTime
	case StatusLive, StatusScheduled, StatusSuspended:
		return s
	default:
		return StatusScheduled
	}
}

// FinishedStatuses holds both spellings of "finished".
func FinishedStatuses() []string {
	return []string{StatusFullTime, StatusFinished}
}

// LiveStatuses holds every in-progress state: live, half-time and paused.
func LiveStatuses() []string {
	return []string{StatusLive, StatusHalfTime, StatusSuspended}
}

func IsFinishedStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case StatusFullTime, StatusFinished:
		return true
	default:
		return false
	}
}

func IsLiveStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case StatusLive, StatusHalfTime, StatusSuspended:
		return true
	default:
		return false
	}
}

// Match is one fixture between two clubs within a round. Scores are nil
// until they are known; a match counts toward standings only when both are
// set.
type Match struct {
	ID         int64
	RoundID    *int64
	KickoffAt  time.Time
	HomeClubID int64
	AwayClubID int64
	HomeScore  *int
	AwayScore  *int
	Status     string
	Minute     int
	Venue      string
}

func (m Match) Validate() error {
	if m.HomeClubID == 0 || m.AwayClubID == 0 {
		return fmt.Errorf("both clubs are required")
	}
	if m.HomeClubID == m.AwayClubID {
		return fmt.Errorf("home and away club cannot be the same")
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		return fmt.Errorf("home score cannot be negative")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		return fmt.Errorf("away score cannot be negative")
	}
	return nil
}

// HasClub reports whether the given club plays in this match.
func (m Match) HasClub(clubID int64) bool {
	return clubID == m.HomeClubID || clubID == m.AwayClubID
}

package topscorer

import "sort"

// Row is one scorer chart line after player hydration.
type Row struct {
	Rank         int
	PlayerID     int64
	PlayerName   string
	PlayerNumber *int
	PhotoURL     string
	ClubID       *int64
	ClubName     string
	Goals        int
}

// Entry is one counted scorer before hydration.
type Entry struct {
	PlayerID int64
	Goals    int
}

// Tally counts goals per scorer and orders the result by count descending,
// player id ascending for equal counts. Own goals and goals without an
// attributed player must be filtered by the caller before counting. A zero
// or negative limit means no truncation.
func Tally(playerIDs []int64, limit int) []Entry {
	counts := make(map[int64]int, len(playerIDs))
	for _, id := range playerIDs {
		counts[id]++
	}

	entries := make([]Entry, 0, len(counts))
	for id, n := range counts {
		entries = append(entries, Entry{PlayerID: id, Goals: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

package memory

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/domain/round"
)

// Development seed: a handful of Ligue 1 Guinée clubs, the opening rounds
// and one played fixture, enough to render every screen without a database.

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: 1, Name: "Hafia FC", ShortName: "HAF", City: "Conakry", Stadium: "Stade du 28 Septembre"},
		{ID: 2, Name: "Horoya AC", ShortName: "HOR", City: "Conakry", Stadium: "Stade Général Lansana Conté"},
		{ID: 3, Name: "AS Kaloum", ShortName: "ASK", City: "Conakry", Stadium: "Stade du 28 Septembre"},
		{ID: 4, Name: "Wakriya AC", ShortName: "WAK", City: "Boké", Stadium: "Stade Régional de Boké"},
		{ID: 5, Name: "Ashanti Golden Boys", ShortName: "AGB", City: "Siguiri", Stadium: "Stade de Siguiri"},
		{ID: 6, Name: "CI Kamsar", ShortName: "CIK", City: "Kamsar", Stadium: "Stade de Kamsar"},
	}
}

func SeedRounds() []round.Round {
	one, two := 1, 2
	return []round.Round{
		{ID: 1, Number: &one, Name: "J1"},
		{ID: 2, Number: &two, Name: "J2"},
	}
}

func SeedPlayers() []player.Player {
	club1, club2 := int64(1), int64(2)
	nine, ten, five := 9, 10, 5
	return []player.Player{
		{ID: 1, ClubID: &club1, FirstName: "Alseny", LastName: "Sylla", Number: &nine, Position: "FW"},
		{ID: 2, ClubID: &club1, FirstName: "Mohamed", LastName: "Bangoura", Number: &ten, Position: "MF"},
		{ID: 3, ClubID: &club2, FirstName: "Ibrahima", LastName: "Conte", Number: &five, Position: "DF"},
	}
}

func SeedMatches() []match.Match {
	roundOne := int64(1)
	hs, as := 2, 1
	kickoff := time.Date(2026, 2, 14, 16, 0, 0, 0, time.UTC)
	return []match.Match{
		{
			ID:         1,
			RoundID:    &roundOne,
			KickoffAt:  kickoff,
			HomeClubID: 1,
			AwayClubID: 2,
			HomeScore:  &hs,
			AwayScore:  &as,
			Status:     match.StatusFullTime,
			Venue:      "Stade du 28 Septembre",
		},
		{
			ID:         2,
			RoundID:    &roundOne,
			KickoffAt:  kickoff.Add(48 * time.Hour),
			HomeClubID: 3,
			AwayClubID: 4,
			Status:     match.StatusScheduled,
			Venue:      "Stade du 28 Septembre",
		},
	}
}

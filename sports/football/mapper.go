package football

import (
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/sports"
)

// Statuses meaning the fixture concluded, including extra time and
// penalty shoot-outs.
var finishedStatuses = map[string]bool{
	"FT":  true,
	"AET": true,
	"PEN": true,
}

func toTeamRef(entry teamEntry, fallbackName string) sports.TeamRef {
	info := entry.Team
	if info.ID == 0 {
		info = teamInfo{ID: entry.ID, Name: entry.Name}
	}
	if info.Name == "" {
		info.Name = fallbackName
	}
	return sports.TeamRef{
		Sport: sports.SportFootball,
		ID:    info.ID,
		Name:  info.Name,
	}
}

func toMatch(f fixture) sports.Match {
	// zero time on parse failure, so the selector sorts it last
	kickoff, _ := time.Parse(time.RFC3339, f.Fixture.Date)

	m := sports.Match{
		HomeID:   f.Teams.Home.ID,
		AwayID:   f.Teams.Away.ID,
		HomeName: f.Teams.Home.Name,
		AwayName: f.Teams.Away.Name,
		Status:   f.Fixture.Status.Short,
		Kickoff:  kickoff,
		Finished: finishedStatuses[f.Fixture.Status.Short],
	}
	if f.Goals.Home != nil {
		m.HomeScore = *f.Goals.Home
	}
	if f.Goals.Away != nil {
		m.AwayScore = *f.Goals.Away
	}
	return m
}

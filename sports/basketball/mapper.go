package basketball

import (
	"strings"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/sports"
)

// Short status codes meaning the game concluded, overtime included.
var finishedShort = map[string]bool{
	"FT":    true,
	"AOT":   true,
	"FT OT": true,
}

// Long-form statuses some responses carry instead of a short code.
var finishedLong = map[string]bool{
	"final":         true,
	"finished":      true,
	"game finished": true,
}

func isFinished(s gameStatus) bool {
	if finishedShort[s.Short] {
		return true
	}
	return finishedLong[strings.ToLower(s.Long)]
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
		Sport: sports.SportBasketball,
		ID:    info.ID,
		Name:  info.Name,
	}
}

func awayTeam(t gameTeams) gameTeam {
	if t.Visitors.ID != 0 || t.Visitors.Name != "" {
		return t.Visitors
	}
	return t.Away
}

func points(s gameScore) int {
	if s.Points != nil {
		return *s.Points
	}
	if s.Total != nil {
		return *s.Total
	}
	return 0
}

func awayScore(s gameScores) gameScore {
	if s.Visitors.Points != nil || s.Visitors.Total != nil {
		return s.Visitors
	}
	return s.Away
}

func toMatch(g game) sports.Match {
	// zero time on parse failure, so the selector sorts it last
	kickoff, _ := time.Parse(time.RFC3339, g.Date)

	away := awayTeam(g.Teams)
	return sports.Match{
		HomeID:    g.Teams.Home.ID,
		AwayID:    away.ID,
		HomeName:  g.Teams.Home.Name,
		AwayName:  away.Name,
		HomeScore: points(g.Scores.Home),
		AwayScore: points(awayScore(g.Scores)),
		Status:    g.Status.Short,
		Kickoff:   kickoff,
		Finished:  isFinished(g.Status),
	}
}

package sports

import (
	"fmt"
	"strings"
)

// FormatAnswer renders a finished match into one sentence, e.g.
// "PSG won 3–1 against Lyon." The queried team's score always comes
// first, regardless of home or away.
func FormatAnswer(teamName string, m Match) string {
	ln := strings.ToLower(teamName)
	isHome := strings.Contains(strings.ToLower(m.HomeName), ln)

	teamScore, oppScore := m.HomeScore, m.AwayScore
	opponent := m.AwayName
	if !isHome {
		teamScore, oppScore = m.AwayScore, m.HomeScore
		opponent = m.HomeName
	}

	var outcome string
	switch {
	case teamScore == oppScore:
		outcome = "drew"
	case teamScore > oppScore:
		outcome = "won"
	default:
		outcome = "lost"
	}

	return fmt.Sprintf("%s %s %d–%d against %s.", teamName, outcome, teamScore, oppScore, opponent)
}

package sports

import "sort"

// PickLastFinished returns the most recent finished match involving the
// team, or false when none qualifies. Matches with unparseable kickoff
// times sort last so they are never preferred over a dated one. Team
// membership is re-verified by external id even though the fetch was
// already filtered by team: a mis-parsed record must not be attributed to
// the wrong team.
func PickLastFinished(matches []Match, teamID int) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}

	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Kickoff.After(sorted[j].Kickoff)
	})

	for _, m := range sorted {
		if !m.Finished {
			continue
		}
		if m.HomeID != teamID && m.AwayID != teamID {
			continue
		}
		return m, true
	}
	return Match{}, false
}

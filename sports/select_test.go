package sports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedMatch(homeID, awayID int, kickoff time.Time) Match {
	return Match{
		HomeID:   homeID,
		AwayID:   awayID,
		HomeName: "Home",
		AwayName: "Away",
		Status:   "FT",
		Kickoff:  kickoff,
		Finished: true,
	}
}

func TestPickLastFinished(t *testing.T) {
	teamID := 85
	earlier := time.Date(2025, time.August, 16, 17, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.August, 17, 21, 0, 0, 0, time.UTC)

	t.Run("most recent finished match wins regardless of list order", func(t *testing.T) {
		old := finishedMatch(teamID, 2, earlier)
		recent := finishedMatch(teamID, 3, later)

		m, ok := PickLastFinished([]Match{old, recent}, teamID)
		require.True(t, ok)
		assert.Equal(t, later, m.Kickoff)

		m, ok = PickLastFinished([]Match{recent, old}, teamID)
		require.True(t, ok)
		assert.Equal(t, later, m.Kickoff)
	})

	t.Run("unfinished matches are skipped", func(t *testing.T) {
		live := finishedMatch(teamID, 2, later)
		live.Status = "LIVE"
		live.Finished = false
		done := finishedMatch(teamID, 3, earlier)

		m, ok := PickLastFinished([]Match{live, done}, teamID)
		require.True(t, ok)
		assert.Equal(t, earlier, m.Kickoff)
	})

	t.Run("matches not involving the team are skipped", func(t *testing.T) {
		other := finishedMatch(7, 8, later)
		mine := finishedMatch(2, teamID, earlier)

		m, ok := PickLastFinished([]Match{other, mine}, teamID)
		require.True(t, ok)
		assert.Equal(t, teamID, m.AwayID)
	})

	t.Run("unparseable kickoff sorts last", func(t *testing.T) {
		undated := finishedMatch(teamID, 2, time.Time{})
		dated := finishedMatch(teamID, 3, earlier)

		m, ok := PickLastFinished([]Match{undated, dated}, teamID)
		require.True(t, ok)
		assert.Equal(t, earlier, m.Kickoff)
	})

	t.Run("no finished match returns false", func(t *testing.T) {
		live := finishedMatch(teamID, 2, later)
		live.Finished = false

		_, ok := PickLastFinished([]Match{live}, teamID)
		assert.False(t, ok)
	})

	t.Run("empty input returns false", func(t *testing.T) {
		_, ok := PickLastFinished(nil, teamID)
		assert.False(t, ok)
	})
}

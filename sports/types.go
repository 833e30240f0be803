// package sports answers free-text questions about recent match results.
// It extracts a team and a time period from the message, asks the football
// and basketball data providers in turn, and renders the last finished
// match into a sentence. When it cannot answer, the caller falls back to
// the LLM.
package sports

import (
	"context"
	"time"
)

// Sport identifies which provider a team or match came from.
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
)

// Period is the symbolic time label extracted from the user's phrasing.
type Period string

const (
	PeriodToday       Period = "today"
	PeriodYesterday   Period = "yesterday"
	PeriodWeekend     Period = "weekend"
	PeriodUnspecified Period = "unspecified"
)

// TeamRef is a provider-scoped team resolution result. The Name is the
// provider's canonical spelling, used in the answer instead of whatever
// abbreviation the user typed.
type TeamRef struct {
	Sport Sport
	ID    int
	Name  string
}

// Match is a single fixture or game, normalized across providers.
type Match struct {
	HomeID    int
	AwayID    int
	HomeName  string
	AwayName  string
	HomeScore int
	AwayScore int
	Status    string
	Kickoff   time.Time // zero when the provider timestamp was unparseable
	Finished  bool      // status is in the provider's finished set
}

// Provider resolves team names and lists matches for one sport. A nil
// *TeamRef with a nil error means the search found no candidates.
type Provider interface {
	SearchTeam(ctx context.Context, name string) (*TeamRef, error)
	Matches(ctx context.Context, teamID int, from, to time.Time) ([]Match, error)
}

package football

// Wire types for the API-Football v3 responses. Only the fields the bot
// reads are declared.

type teamSearchResponse struct {
	Response []teamEntry `json:"response"`
}

// teamEntry carries the team either nested under "team" or flattened at
// the top level, depending on the endpoint version.
type teamEntry struct {
	Team teamInfo `json:"team"`
	ID   int      `json:"id"`
	Name string   `json:"name"`
}

type teamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type fixturesResponse struct {
	Response []fixture `json:"response"`
}

type fixture struct {
	Fixture fixtureMeta  `json:"fixture"`
	Teams   fixtureTeams `json:"teams"`
	Goals   fixtureGoals `json:"goals"`
}

type fixtureMeta struct {
	Date   string        `json:"date"`
	Status fixtureStatus `json:"status"`
}

type fixtureStatus struct {
	Short string `json:"short"`
}

type fixtureTeams struct {
	Home fixtureTeam `json:"home"`
	Away fixtureTeam `json:"away"`
}

type fixtureTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type fixtureGoals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

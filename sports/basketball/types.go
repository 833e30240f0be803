package basketball

// Wire types for the API-Basketball responses. Only the fields the bot
// reads are declared.

type teamSearchResponse struct {
	Response []teamEntry `json:"response"`
}

type teamEntry struct {
	Team teamInfo `json:"team"`
	ID   int      `json:"id"`
	Name string   `json:"name"`
}

type teamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type gamesResponse struct {
	Response []game `json:"response"`
}

type game struct {
	Date   string     `json:"date"`
	Status gameStatus `json:"status"`
	Teams  gameTeams  `json:"teams"`
	Scores gameScores `json:"scores"`
}

type gameStatus struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// gameTeams declares both away spellings; NBA-flavoured hosts call the
// away side "visitors" while the generic basketball host calls it "away".
type gameTeams struct {
	Home     gameTeam `json:"home"`
	Away     gameTeam `json:"away"`
	Visitors gameTeam `json:"visitors"`
}

type gameTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type gameScores struct {
	Home     gameScore `json:"home"`
	Away     gameScore `json:"away"`
	Visitors gameScore `json:"visitors"`
}

type gameScore struct {
	Points *int `json:"points"`
	Total  *int `json:"total"`
}

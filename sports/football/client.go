// package football is a client for the API-Football endpoints on RapidAPI.
package football

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/sports"
)

const defaultHost = "api-football-v1.p.rapidapi.com"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
	host   string
	logger *logging.Logger
}

// NewClient builds a football client. The key and host come from explicit
// configuration so tests can point the client at a fake server.
func NewClient(apiKey, host string, logger *logging.Logger) *Client {
	if host == "" {
		host = defaultHost
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		BaseURL: "https://" + host,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey: apiKey,
		host:   host,
		logger: logger,
	}
}

// SearchTeam resolves a free-text name to the provider's first candidate.
// A nil TeamRef with nil error means no candidate was returned.
func (c *Client) SearchTeam(ctx context.Context, name string) (*sports.TeamRef, error) {
	if name == "" {
		return nil, fmt.Errorf("team name cannot be empty")
	}

	params := url.Values{}
	params.Set("search", name)

	var payload teamSearchResponse
	if err := c.get(ctx, "/v3/teams", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Response) == 0 {
		return nil, nil
	}

	ref := toTeamRef(payload.Response[0], name)
	return &ref, nil
}

// Matches fetches the team's fixtures in the inclusive date range.
func (c *Client) Matches(ctx context.Context, teamID int, from, to time.Time) ([]sports.Match, error) {
	params := url.Values{}
	params.Set("team", fmt.Sprintf("%d", teamID))
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))

	var payload fixturesResponse
	if err := c.get(ctx, "/v3/fixtures", params, &payload); err != nil {
		return nil, err
	}

	matches := make([]sports.Match, 0, len(payload.Response))
	for _, f := range payload.Response {
		matches = append(matches, toMatch(f))
	}
	return matches, nil
}

// FixturesByDate fetches all fixtures in a league on a single day, used by
// the daily results digest.
func (c *Client) FixturesByDate(ctx context.Context, date time.Time, league, season int) ([]sports.Match, error) {
	params := url.Values{}
	params.Set("date", date.Format("2006-01-02"))
	params.Set("league", fmt.Sprintf("%d", league))
	params.Set("season", fmt.Sprintf("%d", season))

	var payload fixturesResponse
	if err := c.get(ctx, "/v3/fixtures", params, &payload); err != nil {
		return nil, err
	}

	matches := make([]sports.Match, 0, len(payload.Response))
	for _, f := range payload.Response {
		matches = append(matches, toMatch(f))
	}
	return matches, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

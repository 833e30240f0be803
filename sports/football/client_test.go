package football

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	c := NewClient("test-key", "", nil)
	c.BaseURL = serverURL
	c.HTTPClient = &http.Client{}
	return c
}

func TestSearchTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/teams", r.URL.Path)
		assert.Equal(t, "PSG", r.URL.Query().Get("search"))
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[{"team":{"id":85,"name":"Paris Saint Germain"}},{"team":{"id":86,"name":"PSG Esports"}}]}`))
	}))
	defer server.Close()

	ref, err := testClient(server.URL).SearchTeam(context.Background(), "PSG")
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, 85, ref.ID)
	assert.Equal(t, "Paris Saint Germain", ref.Name)
}

func TestSearchTeam_FlattenedPayload(t *testing.T) {
	// some plan tiers return the team at the top level instead of nested
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[{"id":85,"name":"Paris Saint Germain"}]}`))
	}))
	defer server.Close()

	ref, err := testClient(server.URL).SearchTeam(context.Background(), "PSG")
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, 85, ref.ID)
}

func TestSearchTeam_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[]}`))
	}))
	defer server.Close()

	ref, err := testClient(server.URL).SearchTeam(context.Background(), "No Such Team FC")
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestSearchTeam_EmptyName(t *testing.T) {
	_, err := NewClient("k", "", nil).SearchTeam(context.Background(), "")
	assert.Error(t, err)
}

func TestSearchTeam_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).SearchTeam(context.Background(), "PSG")
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/fixtures", r.URL.Path)
		assert.Equal(t, "85", r.URL.Query().Get("team"))
		assert.Equal(t, "2025-08-16", r.URL.Query().Get("from"))
		assert.Equal(t, "2025-08-17", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[
			{"fixture":{"date":"2025-08-16T19:00:00+00:00","status":{"short":"FT"}},
			 "teams":{"home":{"id":85,"name":"Paris Saint Germain"},"away":{"id":80,"name":"Lyon"}},
			 "goals":{"home":3,"away":1}},
			{"fixture":{"date":"2025-08-17T19:00:00+00:00","status":{"short":"NS"}},
			 "teams":{"home":{"id":80,"name":"Lyon"},"away":{"id":85,"name":"Paris Saint Germain"}},
			 "goals":{"home":null,"away":null}}
		]}`))
	}))
	defer server.Close()

	from := time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC)
	matches, err := testClient(server.URL).Matches(context.Background(), 85, from, to)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.True(t, matches[0].Finished)
	assert.Equal(t, 3, matches[0].HomeScore)
	assert.Equal(t, 1, matches[0].AwayScore)
	assert.Equal(t, "Paris Saint Germain", matches[0].HomeName)

	// not-started fixture maps with zero scores and Finished=false
	assert.False(t, matches[1].Finished)
	assert.Equal(t, 0, matches[1].HomeScore)
}

func TestMatches_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Matches(context.Background(), 85, time.Now(), time.Now())
	assert.Error(t, err)
}

func TestFixturesByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "61", r.URL.Query().Get("league"))
		assert.Equal(t, "2025", r.URL.Query().Get("season"))
		assert.Equal(t, "2025-08-31", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[]}`))
	}))
	defer server.Close()

	date := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)
	matches, err := testClient(server.URL).FixturesByDate(context.Background(), date, 61, 2025)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMapper_UnparseableDateYieldsZeroKickoff(t *testing.T) {
	m := toMatch(fixture{
		Fixture: fixtureMeta{Date: "garbage", Status: fixtureStatus{Short: "FT"}},
	})
	assert.True(t, m.Kickoff.IsZero())
	assert.True(t, m.Finished)
}

func TestMapper_FinishedStatuses(t *testing.T) {
	for _, status := range []string{"FT", "AET", "PEN"} {
		m := toMatch(fixture{Fixture: fixtureMeta{Status: fixtureStatus{Short: status}}})
		assert.True(t, m.Finished, status)
	}
	for _, status := range []string{"NS", "LIVE", "PST", "CANC", ""} {
		m := toMatch(fixture{Fixture: fixtureMeta{Status: fixtureStatus{Short: status}}})
		assert.False(t, m.Finished, status)
	}
}

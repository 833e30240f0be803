// package results composes the daily digest of yesterday's NBA games and
// European football fixtures.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/sports"
	"golang.org/x/sync/errgroup"
)

// League ids on the providers.
const nbaLeagueID = 12

// League pairs a provider league id with a display name.
type League struct {
	ID   int
	Name string
}

// DefaultFootballLeagues are the competitions the owner follows.
var DefaultFootballLeagues = []League{
	{ID: 61, Name: "Ligue 1 (France)"},
	{ID: 39, Name: "Premier League (England)"},
}

// FootballSource lists a league's fixtures on one day.
type FootballSource interface {
	FixturesByDate(ctx context.Context, date time.Time, league, season int) ([]sports.Match, error)
}

// BasketballSource lists a league's games on one day.
type BasketballSource interface {
	GamesByDate(ctx context.Context, date time.Time, league int, season string) ([]sports.Match, error)
}

// Digest fetches and formats the daily results message.
type Digest struct {
	football   FootballSource // nil disables the football section
	basketball BasketballSource
	leagues    []League
	logger     *logging.Logger
}

func NewDigest(football FootballSource, basketball BasketballSource, leagues []League, logger *logging.Logger) *Digest {
	if leagues == nil {
		leagues = DefaultFootballLeagues
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Digest{
		football:   football,
		basketball: basketball,
		leagues:    leagues,
		logger:     logger,
	}
}

// FootballSeason is the starting year of the season containing date; the
// provider wants 2025 for the 2025/26 season. July starts a new season.
func FootballSeason(date time.Time) int {
	if date.Month() >= time.July {
		return date.Year()
	}
	return date.Year() - 1
}

// NBASeason is the provider's "YYYY-YYYY+1" season string; October starts
// a new season.
func NBASeason(date time.Time) string {
	start := date.Year()
	if date.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

// Compose builds the digest for one day, fetching the NBA and each
// football league concurrently. A failed source contributes an error line
// instead of failing the push.
func (d *Digest) Compose(ctx context.Context, date time.Time) string {
	nbaLines := make([]string, 0)
	footballLines := make([][]string, len(d.leagues))

	g, gctx := errgroup.WithContext(ctx)

	if d.basketball != nil {
		g.Go(func() error {
			games, err := d.basketball.GamesByDate(gctx, date, nbaLeagueID, NBASeason(date))
			if err != nil {
				d.logger.Warn("nba digest fetch failed", "error", err.Error())
				nbaLines = append(nbaLines, "(NBA results unavailable)")
				return nil
			}
			for _, m := range games {
				nbaLines = append(nbaLines, scoreLine(m, ""))
			}
			return nil
		})
	}

	if d.football != nil {
		season := FootballSeason(date)
		for i, league := range d.leagues {
			i, league := i, league
			g.Go(func() error {
				fixtures, err := d.football.FixturesByDate(gctx, date, league.ID, season)
				if err != nil {
					d.logger.Warn("football digest fetch failed", "league", league.Name, "error", err.Error())
					footballLines[i] = []string{fmt.Sprintf("(%s results unavailable)", league.Name)}
					return nil
				}
				lines := make([]string, 0, len(fixtures))
				for _, m := range fixtures {
					lines = append(lines, scoreLine(m, league.Name))
				}
				footballLines[i] = lines
				return nil
			})
		}
	}

	_ = g.Wait()

	var b strings.Builder
	fmt.Fprintf(&b, "🤾 Salam aleykum, here are the results for %s:\n\n", date.Format("2006-01-02"))

	b.WriteString("🏀 NBA:\n")
	writeLines(&b, nbaLines)
	b.WriteString("\n⚽ European football:\n")

	var flat []string
	for _, lines := range footballLines {
		flat = append(flat, lines...)
	}
	writeLines(&b, flat)
	return b.String()
}

func scoreLine(m sports.Match, league string) string {
	line := fmt.Sprintf("%s %d - %d %s", m.HomeName, m.HomeScore, m.AwayScore, m.AwayName)
	if league != "" {
		line += fmt.Sprintf(" (%s)", league)
	}
	return line
}

func writeLines(b *strings.Builder, lines []string) {
	if len(lines) == 0 {
		b.WriteString(" - No games.\n")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(b, " - %s\n", line)
	}
}

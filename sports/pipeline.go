package sports

import (
	"context"
	"fmt"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/metrics"
)

// Pipeline sequences classifier, extractor, period resolution and provider
// lookups for one question. Providers are attempted in order; football
// takes priority over basketball. A nil provider means that sport's key is
// not configured and it is skipped silently.
type Pipeline struct {
	football   Provider
	basketball Provider
	now        func() time.Time
	logger     *logging.Logger
}

// NewPipeline wires the two providers. Pass nil for a sport without a
// configured credential.
func NewPipeline(football, basketball Provider, logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		football:   football,
		basketball: basketball,
		now:        time.Now,
		logger:     logger,
	}
}

// NotFoundAnswer is the positive answer sent when the providers were
// reachable but no finished match was found. It must be sent verbatim,
// not treated as an LLM fallback signal.
func NotFoundAnswer(team string) string {
	return fmt.Sprintf("I couldn't find a match for %s in that period.", team)
}

// Answer resolves a sports question into a ready-to-send sentence. The
// second return value is false when the caller should fall back to the
// LLM: the text is not a sports question, no team could be extracted, or
// no provider is configured at all. Provider failures never escape; each
// sport degrades to "no data" independently.
func (p *Pipeline) Answer(ctx context.Context, text string) (string, bool) {
	if !IsSportsQuestion(text) {
		return "", false
	}

	team, ok := ExtractTeamName(text)
	if !ok {
		p.logger.Debug("no team extracted from sports question")
		return "", false
	}

	period := ExtractTimePeriod(text)
	from, to := ResolvePeriod(period, p.now())
	p.logger.Debug("resolved sports query", "team", team, "period", string(period),
		"from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"))

	for _, attempt := range []struct {
		sport    Sport
		provider Provider
	}{
		{SportFootball, p.football},
		{SportBasketball, p.basketball},
	} {
		if attempt.provider == nil {
			continue
		}
		if answer, ok := p.trySport(ctx, attempt.sport, attempt.provider, team, from, to); ok {
			metrics.SportsAnswerCount.Add(1)
			return answer, true
		}
	}

	if p.football == nil && p.basketball == nil {
		// feature disabled, let the LLM handle it
		return "", false
	}

	metrics.SportsNotFoundCount.Add(1)
	return NotFoundAnswer(team), true
}

// trySport runs search, fetch, select and format for one provider. Errors
// are logged and counted, then collapsed into "no data for this sport" so
// the other sport still gets its attempt.
func (p *Pipeline) trySport(ctx context.Context, sport Sport, provider Provider, team string, from, to time.Time) (string, bool) {
	start := time.Now()
	ref, err := provider.SearchTeam(ctx, team)
	metrics.ProviderCallDuration.WithLabelValues(string(sport), "search").Observe(time.Since(start).Seconds())
	if err != nil {
		p.logger.Warn("team search failed", "sport", string(sport), "team", team, "error", err.Error())
		metrics.ProviderCallsTotal.WithLabelValues(string(sport), "search", "error").Inc()
		return "", false
	}
	metrics.ProviderCallsTotal.WithLabelValues(string(sport), "search", "ok").Inc()
	if ref == nil || ref.ID == 0 {
		return "", false
	}

	start = time.Now()
	matches, err := provider.Matches(ctx, ref.ID, from, to)
	metrics.ProviderCallDuration.WithLabelValues(string(sport), "matches").Observe(time.Since(start).Seconds())
	if err != nil {
		p.logger.Warn("match fetch failed", "sport", string(sport), "teamID", ref.ID, "error", err.Error())
		metrics.ProviderCallsTotal.WithLabelValues(string(sport), "matches", "error").Inc()
		return "", false
	}
	metrics.ProviderCallsTotal.WithLabelValues(string(sport), "matches", "ok").Inc()

	m, ok := PickLastFinished(matches, ref.ID)
	if !ok {
		return "", false
	}
	return FormatAnswer(ref.Name, m), true
}

package sports

import (
	"regexp"
	"strings"
)

// teamMatcher tries one phrasing template against the original-cased text
// and returns the captured team name. Matchers are tried in order; the
// first hit wins.
type teamMatcher func(text string) (string, bool)

var (
	// "What did PSG do this weekend?" / "Qu'a fait le PSG ce week-end ?"
	reWhatDid = regexp.MustCompile(`(?i)what did\s+(?:the\s+)?(.+?)\s+do(?:\s+(?:this weekend|yesterday|today))?\s*\??`)
	reQuAFait = regexp.MustCompile(`(?i)qu[’']?a fait\s+(?:le\s+|la\s+|les\s+|l')?(.+?)\s*(?:ce week-end|ce weekend|hier|aujourd'hui|\?)`)

	// "What was the score of PSG yesterday?" / "C'était quoi le score du PSG hier ?"
	reScoreOf = regexp.MustCompile(`(?i)score of\s+(?:the\s+)?(.+?)(?:\s+(?:yesterday|today|tonight)|\s*\?)`)
	reScoreDu = regexp.MustCompile(`(?i)score (?:du|de la|de l'|des)\s+(.+?)(?:\s+(?:hier|aujourd'hui|ce soir)|\s*\?)`)

	// fallback: a team name right before a sports noun, "the PSG match".
	// The greedy prefix anchors the capture to the last determiner before
	// the noun, so "the result of the PSG match" yields PSG, not the
	// whole clause.
	reSportNoun = regexp.MustCompile(`(?i).*\b(?:of|for|the|du|de la|de l'|des)\s+(.+?)\s+(?:match|score|result|résultat|resultat)`)
)

var teamMatchers = []teamMatcher{
	matchWhatDid,
	matchScoreOf,
	matchBeforeSportsNoun,
}

func matchWhatDid(text string) (string, bool) {
	if m := reWhatDid.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := reQuAFait.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

func matchScoreOf(text string) (string, bool) {
	if m := reScoreOf.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := reScoreDu.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

func matchBeforeSportsNoun(text string) (string, bool) {
	if m := reSportNoun.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractTeamName pulls a candidate team name out of the message. It keeps
// the original casing so acronyms like PSG or OM survive. Returns false
// when no template matches; the pipeline must not guess, or the provider
// search would resolve an empty string to its first result.
func ExtractTeamName(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	original := strings.TrimSpace(text)
	for _, match := range teamMatchers {
		if team, ok := match(original); ok {
			team = strings.TrimSpace(strings.Trim(team, " ?.!,"))
			if team != "" {
				return team, true
			}
		}
	}
	return "", false
}

// ExtractTimePeriod maps time words in the message to a symbolic period.
// Independent of team extraction; no time word means unspecified.
func ExtractTimePeriod(text string) Period {
	if text == "" {
		return PeriodUnspecified
	}

	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "yesterday"), strings.Contains(t, "hier"):
		return PeriodYesterday
	case strings.Contains(t, "today"), strings.Contains(t, "aujourd'hui"), strings.Contains(t, "aujourdhui"):
		return PeriodToday
	case strings.Contains(t, "this weekend"), strings.Contains(t, "ce week-end"), strings.Contains(t, "ce weekend"):
		return PeriodWeekend
	default:
		return PeriodUnspecified
	}
}

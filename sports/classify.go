package sports

import "strings"

// Keywords that make a message look like a question about a match result.
// French spellings with and without the accent are both listed because the
// owner types either. "what did" / "a fait" catch the colloquial "what did
// X do" phrasing that never mentions a score directly.
var sportsKeywords = []string{
	"score",
	"match",
	"result",
	"résultat",
	"resultat",
	"what did",
	"a fait",
	"ont fait",
}

// IsSportsQuestion reports whether the text looks like a match-result
// question. It is deliberately permissive: a false positive just runs the
// pipeline and falls back to the LLM, a false negative is unrecoverable.
func IsSportsQuestion(text string) bool {
	if text == "" {
		return false
	}

	t := strings.ToLower(text)
	for _, k := range sportsKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// package content composes the daily inspirational push from a JSON bank
// of curated snippets, optionally topped with a short LLM-written note.
package content

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Bank holds the curated snippets by category.
type Bank struct {
	categories map[string][]string
}

// prefixes rendered before a snippet of each known category.
var categoryPrefixes = map[string]string{
	"hadith": "🤲 Hadith: ",
	"quran":  "📖 Quran: ",
	"quotes": "✨ Quote: ",
	"health": "💊 Health: ",
}

// LoadBank reads the content bank file. A missing file yields an empty
// bank rather than an error; the composer then relies on the LLM alone.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Bank{categories: map[string][]string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading content bank %s: %w", path, err)
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing content bank %s: %w", path, err)
	}
	return &Bank{categories: categories}, nil
}

// Pick returns one random snippet with its category prefix, or false when
// the bank has nothing to offer.
func (b *Bank) Pick() (string, bool) {
	var available []string
	for cat, snippets := range b.categories {
		if len(snippets) > 0 {
			available = append(available, cat)
		}
	}
	if len(available) == 0 {
		return "", false
	}

	cat := available[rand.Intn(len(available))]
	snippet := b.categories[cat][rand.Intn(len(b.categories[cat]))]
	return categoryPrefixes[cat] + snippet, true
}

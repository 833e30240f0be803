package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Persona is the long-term memory about the companion's owner, kept in a
// JSON file next to the binary. It seeds the system prompt so every reply
// stays personal without re-learning anything per conversation.
type Persona struct {
	Identity struct {
		FirstName  string `json:"first_name"`
		Age        string `json:"age"`
		Profession string `json:"profession"`
		Religion   string `json:"religion"`
		Health     string `json:"health"`
	} `json:"identity"`
	Family struct {
		Spouse        string `json:"spouse"`
		Children      string `json:"children"`
		Grandchildren string `json:"grandchildren"`
	} `json:"family"`
	Tastes struct {
		Sport     string `json:"sport"`
		Pleasures string `json:"pleasures"`
		Music     string `json:"music"`
		Films     string `json:"films"`
	} `json:"tastes"`
	Communication struct {
		Tone        string `json:"tone"`
		Expressions string `json:"expressions"`
	} `json:"communication"`
}

// LoadPersona reads the memory file. The file is required: without it the
// bot would answer as a stranger.
func LoadPersona(path string) (*Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading memory file %s: %w", path, err)
	}

	var p Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error parsing memory file %s: %w", path, err)
	}
	return &p, nil
}

// SystemPrompt renders the persona into the system message for the chat
// completion.
func (p *Persona) SystemPrompt() string {
	var facts []string
	add := func(label, value string) {
		if value != "" {
			facts = append(facts, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	add("First name", p.Identity.FirstName)
	add("Age", p.Identity.Age)
	add("Spouse", p.Family.Spouse)
	add("Children", p.Family.Children)
	add("Grandchildren", p.Family.Grandchildren)
	add("Profession", p.Identity.Profession)
	add("Religion", p.Identity.Religion)
	add("Health", p.Identity.Health)
	add("Favorite sport", p.Tastes.Sport)
	add("Simple pleasures", p.Tastes.Pleasures)
	add("Music", p.Tastes.Music)
	add("Films and series", p.Tastes.Films)
	add("Preferred tone", p.Communication.Tone)
	add("Frequent expressions", p.Communication.Expressions)

	var b strings.Builder
	b.WriteString("Here is personal information about the person you are talking to:\n")
	b.WriteString(strings.Join(facts, "\n"))
	b.WriteString("\n\nYou are Lanai, their WhatsApp companion. ")
	b.WriteString("Use simple language, short sentences, and a warm, caring, reassuring tone. ")
	b.WriteString("When it fits, mention their family naturally. ")
	b.WriteString("Avoid jargon and overly long answers.")
	return b.String()
}

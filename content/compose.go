package content

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lanai-bot/whatsapp-llm-bot/ai"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Mode selects how the daily message is assembled.
type Mode string

const (
	// ModeHybrid sends an LLM note plus a bank snippet
	ModeHybrid Mode = "hybrid"
	// ModeBank sends a bank snippet only
	ModeBank Mode = "bank"
	// ModeLLM sends an LLM note only
	ModeLLM Mode = "llm"
)

const greeting = "Salam aleykum,"

var snippetThemes = []string{
	"gentle encouragement plus a small question",
	"checking in, with a nod to the family",
	"a positive word plus a small suggestion (breathing, a short walk)",
	"a sports check-in (did you see the scores?) plus a motivating line",
}

// Composer assembles the daily content push.
type Composer struct {
	bank    *Bank
	llm     llms.Model // nil degrades hybrid/llm modes to bank-only
	persona *ai.Persona
	mode    Mode
	logger  *logging.Logger
}

func NewComposer(bank *Bank, llm llms.Model, persona *ai.Persona, mode Mode, logger *logging.Logger) *Composer {
	if persona == nil {
		persona = &ai.Persona{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{
		bank:    bank,
		llm:     llm,
		persona: persona,
		mode:    mode,
		logger:  logger,
	}
}

// snippet asks the LLM for a two-to-three sentence companion note.
func (c *Composer) snippet(ctx context.Context) (string, error) {
	prompt := fmt.Sprintf(
		"Start with \"%s\" on the first line. Theme: %s. "+
			"Two to three sentences maximum. No jargon, no emojis.",
		greeting, snippetThemes[rand.Intn(len(snippetThemes))])

	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, c.persona.SystemPrompt()),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	},
		llms.WithCandidateCount(1),
		llms.WithMaxTokens(150),
		llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("failed to get llm response: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", fmt.Errorf("llm returned an empty snippet")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// Compose builds the daily message for the configured mode. The bank line
// is always included in hybrid and bank modes; a failing LLM degrades to a
// plain greeting instead of dropping the push.
func (c *Composer) Compose(ctx context.Context) (string, error) {
	mode := c.mode
	if c.llm == nil && mode != ModeBank {
		mode = ModeBank
	}

	var note string
	if mode == ModeHybrid || mode == ModeLLM {
		var err error
		note, err = c.snippet(ctx)
		if err != nil {
			c.logger.Warn("llm snippet failed, falling back to bank", "error", err.Error())
			mode = ModeBank
		}
	}

	var bankLine string
	if mode == ModeHybrid || mode == ModeBank {
		if line, ok := c.bank.Pick(); ok {
			bankLine = line
		}
	}

	switch {
	case note != "" && bankLine != "":
		return note + "\n\n" + bankLine, nil
	case note != "":
		return note, nil
	case bankLine != "":
		return greeting + "\n\n" + bankLine, nil
	default:
		return "", fmt.Errorf("no content available from either the bank or the llm")
	}
}

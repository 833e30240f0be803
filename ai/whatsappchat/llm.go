package whatsappchat

import (
	"context"
	"fmt"
	"strings"

	"github.com/lanai-bot/whatsapp-llm-bot/database"
	"github.com/lanai-bot/whatsapp-llm-bot/metrics"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// buildHistory replays the stored conversation into chat turns, oldest
// first, so the model keeps the thread of the ongoing conversation.
func (c *Client) buildHistory(ctx context.Context, userPhone string) []llms.MessageContent {
	history := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, c.persona.SystemPrompt()),
	}

	stored, err := c.db.GetHistory(ctx, userPhone, historyLimit)
	if err != nil {
		// an empty history still produces a valid, if forgetful, reply
		c.logger.Warn("failed to load chat history", "error", err.Error(), "user", userPhone)
		return history
	}

	for _, msg := range stored {
		chatType := schema.ChatMessageTypeHuman
		if msg.Role == database.RoleAssistant {
			chatType = schema.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(chatType, msg.Content))
	}
	return history
}

// Reply generates a companion reply to one inbound message.
func (c *Client) Reply(ctx context.Context, userPhone, text string) (string, error) {
	messageHistory := c.buildHistory(ctx, userPhone)
	messageHistory = append(messageHistory, llms.TextParts(schema.ChatMessageTypeHuman, text))

	resp, err := c.llm.GenerateContent(ctx, messageHistory,
		llms.WithCandidateCount(1),
		llms.WithMaxTokens(300),
		llms.WithTemperature(0.7))
	if err != nil {
		metrics.FailedLLMGenCount.Add(1)
		return "", fmt.Errorf("failed to get llm response: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.EmptyLLMResponseCount.Add(1)
		return "", fmt.Errorf("llm returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Content)
	if reply == "" {
		metrics.EmptyLLMResponseCount.Add(1)
		return "", fmt.Errorf("llm returned an empty reply")
	}

	metrics.SuccessfulLLMGenCount.Add(1)
	return reply, nil
}

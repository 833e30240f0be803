// package ai defines the interface the bot uses to generate companion
// replies, plus the persona loaded from the long-term memory file.
package ai

import "context"

// Apology is sent when the LLM cannot produce a reply.
const Apology = "Sorry, I cannot answer right now."

// Chatter generates a reply to one inbound message, with conversation
// history handled by the implementation.
type Chatter interface {
	Reply(ctx context.Context, userPhone, text string) (string, error)
}

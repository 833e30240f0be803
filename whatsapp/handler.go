// package whatsapp receives inbound WhatsApp messages on the Twilio
// webhook, answers them, and sends the reply back.
package whatsapp

import (
	"context"
	"net/http"

	"github.com/lanai-bot/whatsapp-llm-bot/ai"
	"github.com/lanai-bot/whatsapp-llm-bot/database"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/lanai-bot/whatsapp-llm-bot/metrics"
)

// Sender delivers an outbound message and returns the provider's message id.
type Sender interface {
	SendMessage(ctx context.Context, to, body string) (string, error)
}

// SportsAnswerer tries to answer a message as a sports question. ok=false
// means the message should go to the LLM instead.
type SportsAnswerer interface {
	Answer(ctx context.Context, text string) (string, bool)
}

// Handler processes inbound webhook messages.
type Handler struct {
	db     database.MessageStore
	llm    ai.Chatter
	sports SportsAnswerer
	sender Sender
	logger *logging.Logger
}

// NewHandler wires the webhook handler. sports may be nil when no provider
// key is configured; every message then goes straight to the LLM.
func NewHandler(db database.MessageStore, llm ai.Chatter, sports SportsAnswerer, sender Sender, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		db:     db,
		llm:    llm,
		sports: sports,
		sender: sender,
		logger: logger,
	}
}

// handleMessage is the Twilio inbound webhook. Twilio posts form fields;
// the reply is sent asynchronously through the REST API rather than in the
// webhook response, so the handler always answers 204.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse webhook form", "error", err.Error())
		w.WriteHeader(http.StatusNoContent)
		return
	}

	sender := r.FormValue("From") // e.g. "whatsapp:+33..."
	body := r.FormValue("Body")
	msgSID := r.FormValue("MessageSid")

	if sender == "" || body == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	metrics.WebhookMessageReceivedCount.Add(1)

	ctx := r.Context()
	reply := h.composeReply(ctx, sender, body)

	// persist the user turn with the Twilio SID so webhook retries dedup
	_, err := h.db.InsertMessage(ctx, database.Message{
		UserPhone: sender,
		Role:      database.RoleUser,
		Content:   body,
		MsgSID:    database.NullString(msgSID),
		Direction: database.NullString(database.DirectionIn),
		Source:    database.NullString(database.SourceWebhook),
	})
	if err != nil {
		// history is best effort, the reply still goes out
		h.logger.Error("failed to persist inbound message", "error", err.Error())
	}

	outSID, err := h.sender.SendMessage(ctx, sender, reply)
	if err != nil {
		h.logger.Error("failed to send whatsapp reply", "error", err.Error())
		w.WriteHeader(http.StatusNoContent)
		return
	}
	metrics.WebhookMessageSentCount.Add(1)

	_, err = h.db.InsertMessage(ctx, database.Message{
		UserPhone: sender,
		Role:      database.RoleAssistant,
		Content:   reply,
		MsgSID:    database.NullString(outSID),
		Direction: database.NullString(database.DirectionOut),
		Source:    database.NullString(database.SourceWebhook),
	})
	if err != nil {
		h.logger.Error("failed to persist outbound message", "error", err.Error())
	}

	w.WriteHeader(http.StatusNoContent)
}

// composeReply tries the sports pipeline first and falls back to the LLM.
func (h *Handler) composeReply(ctx context.Context, sender, body string) string {
	if h.sports != nil {
		if answer, ok := h.sports.Answer(ctx, body); ok {
			h.logger.Debug("answered from sports pipeline", "user", sender)
			return answer
		}
		metrics.SportsFallbackCount.Add(1)
	}

	reply, err := h.llm.Reply(ctx, sender, body)
	if err != nil {
		h.logger.Error("llm reply failed", "error", err.Error(), "user", sender)
		return ai.Apology
	}
	return reply
}

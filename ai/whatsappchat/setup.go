// package whatsappchat implements the Chatter interface for the WhatsApp
// companion using an OpenAI chat completion over the stored conversation.
package whatsappchat

import (
	"github.com/lanai-bot/whatsapp-llm-bot/ai"
	"github.com/lanai-bot/whatsapp-llm-bot/database"
	"github.com/lanai-bot/whatsapp-llm-bot/logging"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// historyLimit is how many stored turns are replayed into the prompt.
const historyLimit = 20

// Client is a client for interacting with the OpenAI LLM and the stored
// conversation history.
type Client struct {
	llm       llms.Model
	db        database.HistoryReader
	persona   *ai.Persona
	modelName string
	logger    *logging.Logger
}

// Setup creates the companion chat client.
func Setup(db database.HistoryReader, persona *ai.Persona, apiKey, modelName string, logger *logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Default()
	}

	logger.Info("setting up whatsapp chat LLM client", "model", modelName)

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	}
	llm, err := openai.New(opts...)
	if err != nil {
		logger.Error("failed to create OpenAI LLM", "error", err.Error())
		return nil, errors.Wrap(err, "failed to create OpenAI LLM")
	}

	return &Client{
		llm:       llm,
		db:        db,
		persona:   persona,
		modelName: modelName,
		logger:    logger,
	}, nil
}

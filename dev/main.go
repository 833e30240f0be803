package main

// go run ./dev "What did PSG do this weekend?"
import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lanai-bot/whatsapp-llm-bot/config"
	"github.com/lanai-bot/whatsapp-llm-bot/sports"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/basketball"
	"github.com/lanai-bot/whatsapp-llm-bot/sports/football"
)

func main() {
	question := "What did PSG do yesterday?"
	if len(os.Args) > 1 {
		question = strings.Join(os.Args[1:], " ")
	}

	cfg := config.FromEnv()

	var footballClient sports.Provider
	if cfg.FootballAPIKey != "" {
		footballClient = football.NewClient(cfg.FootballAPIKey, cfg.FootballAPIHost, nil)
	}
	var basketballClient sports.Provider
	if cfg.BasketballAPIKey != "" {
		basketballClient = basketball.NewClient(cfg.BasketballAPIKey, cfg.BasketballAPIHost, nil)
	}
	if footballClient == nil && basketballClient == nil {
		log.Fatal("set RAPIDAPI_KEY_FOOT or RAPIDAPI_KEY_BASKET to test against the live APIs")
	}

	pipeline := sports.NewPipeline(footballClient, basketballClient, nil)

	fmt.Printf("Question: %s\n\n", question)
	answer, ok := pipeline.Answer(context.Background(), question)
	if !ok {
		fmt.Println("Not handled as a sports question, would go to the LLM.")
		return
	}
	fmt.Println(answer)
}

// Sends a single prompt to the chat backend to check the key and endpoint.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wassup1201/Simple-Agent/internal/adapters/openai"
	"github.com/wassup1201/Simple-Agent/internal/config"
	infrahttp "github.com/wassup1201/Simple-Agent/internal/infra/http"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

func main() {
	cfg, err := config.LoadForChatPing()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.NewLogger(cfg.Log, cfg.TelegramBot)
	if err != nil {
		fmt.Printf("logger error %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println("Key:", config.MaskSecret(cfg.OpenAI.APIKey))

	client := openai.NewClient(cfg.OpenAI, infrahttp.NewClient(cfg.OpenAI.Timeout), logger)
	result, err := client.Ping(context.Background())
	if err != nil {
		logger.LogError("chat ping failed", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	fmt.Println("HTTP status:", result.StatusCode)
	if !result.Parsed {
		fmt.Println("No reply text in response")
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Println("Model reply:", result.Text)
}

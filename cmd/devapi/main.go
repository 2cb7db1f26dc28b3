// Command devapi serves the chat endpoint for local frontend work, with CORS
// open to any origin and a looser rate limit.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"portfoliochat/internal/config"
	"portfoliochat/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, config.LoadDev()); err != nil {
		log.Fatalf("Dev API error: %v", err)
	}
}

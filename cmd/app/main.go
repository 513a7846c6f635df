package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/internal/app"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("app error: %v", err)
	}
}

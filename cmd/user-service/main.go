package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/wb_microservices/config"
	"github.com/Gunvolt24/wb_microservices/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadUser()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.BootstrapUser(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "user-service stopped with error: %v", err)
	}
}

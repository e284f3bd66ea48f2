package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"papergenius_backend/internal/notify"
	"papergenius_backend/internal/worker"
	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	if cfg.GetRedisURL() == "" {
		panic("REDIS_URL is required for the worker")
	}

	whatsappClient := notify.NewWhatsAppClient(cfg, log)
	if whatsappClient == nil {
		log.Warn("WhatsApp gateway not configured; notifications will be dropped")
	}

	w, err := worker.New(cfg, cfg, whatsappClient, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received, stopping worker")
		w.Shutdown()
	}()

	log.Info("worker started", "queue", cfg.GetAsynqQueueName(), "concurrency", cfg.GetAsynqConcurrency())
	if err := w.Run(); err != nil {
		log.Error("worker error", "error", err)
		panic("worker error: " + err.Error())
	}
	log.Info("worker stopped")
}

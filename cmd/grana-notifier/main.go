package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"grana/internal/amqp"
	"grana/internal/cli"
	"grana/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting grana-notifier")

	cfg := cli.LoadAndValidateConfig(logger)

	sqliteRepo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer sqliteRepo.Close()

	// AMQP is optional: without a broker the notifier runs in sweep-only
	// mode, delivering whatever the periodic pending scan finds.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - running in sweep-only mode")
	}

	notifyWorker := worker.NewNotifyWorker(sqliteRepo, cfg.BotWebhookURL, cfg.NotifyBatchSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// On startup, deliver anything that was left pending.
	if err := notifyWorker.ProcessPendingNotifications(ctx); err != nil {
		logger.Error("Startup pending sweep failed", "error", err)
		// Don't exit - continue with normal operation
	}

	g, ctx := errgroup.WithContext(ctx)

	if amqpClient != nil {
		g.Go(func() error {
			return amqpClient.ConsumeTransactionRecorded(ctx, notifyWorker.HandleRecordedMessage)
		})
	}

	// Periodic sweep for events the broker never delivered.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.NotifyInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := notifyWorker.ProcessPendingNotifications(ctx); err != nil {
					logger.Error("Periodic sweep failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Notifier stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Notifier stopped gracefully")
}

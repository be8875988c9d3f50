// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/rollcall-project/rollcall/discord"
	"github.com/rollcall-project/rollcall/lib/clock"
	"github.com/rollcall-project/rollcall/lib/config"
	"github.com/rollcall-project/rollcall/lib/service"
	"github.com/rollcall-project/rollcall/lib/version"
	"github.com/rollcall-project/rollcall/roster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		showVersion bool
	)
	pflag.StringVar(&configPath, "config", "", "path to yaml config file (default: $ROLLCALL_CONFIG)")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("rollcall-bot %s\n", version.Info())
		return nil
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	token, err := config.BotToken()
	if err != nil {
		return err
	}

	interval, err := cfg.ReminderInterval()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.Real()
	registry := roster.NewRegistry()

	gateway, err := discord.New(token, cfg.Discord.GuildID, registry, logger)
	if err != nil {
		return err
	}
	if err := gateway.Open(); err != nil {
		return err
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Error("closing discord gateway", "error", err)
		}
	}()

	bot := &botService{
		registry:  registry,
		gateway:   gateway,
		clock:     clk,
		startedAt: clk.Now(),
		logger:    logger,
	}

	// Liveness endpoint, if configured.
	var healthDone chan error
	if cfg.Health.Address != "" {
		healthServer := service.NewHTTPServer(service.HTTPServerConfig{
			Address: cfg.Health.Address,
			Handler: bot.healthHandler(),
			Logger:  logger,
		})
		healthDone = make(chan error, 1)
		go func() {
			healthDone <- healthServer.Serve(ctx)
		}()
	}

	// Admin socket, if configured.
	var socketDone chan error
	if cfg.Admin.Socket != "" {
		socketServer := service.NewSocketServer(cfg.Admin.Socket, logger)
		bot.registerActions(socketServer)
		socketDone = make(chan error, 1)
		go func() {
			socketDone <- socketServer.Serve(ctx)
		}()
	}

	// Reminder scan loop.
	remindDone := make(chan struct{})
	go func() {
		defer close(remindDone)
		runReminderLoop(ctx, registry, gateway, clk, interval, logger)
	}()

	logger.Info("rollcall bot running",
		"guild_id", cfg.Discord.GuildID,
		"health_address", cfg.Health.Address,
		"admin_socket", cfg.Admin.Socket,
		"reminder_interval", interval.String(),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	<-remindDone
	if socketDone != nil {
		if err := <-socketDone; err != nil {
			logger.Error("admin socket error", "error", err)
		}
	}
	if healthDone != nil {
		if err := <-healthDone; err != nil {
			logger.Error("health server error", "error", err)
		}
	}
	return nil
}

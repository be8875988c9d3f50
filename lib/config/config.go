// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Rollcall binaries.
//
// Configuration is loaded from a single yaml file specified by:
//   - the ROLLCALL_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides.
// The Discord bot token is deliberately not part of the file: it is
// read from the ROLLCALL_BOT_TOKEN environment variable so that config
// files can be committed and shared without leaking credentials.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the config file.
const EnvVar = "ROLLCALL_CONFIG"

// TokenEnvVar is the environment variable holding the Discord bot
// token. Never stored in the config file.
const TokenEnvVar = "ROLLCALL_BOT_TOKEN"

// Config is the master configuration for the Rollcall bot.
type Config struct {
	// Discord configures the chat gateway.
	Discord DiscordConfig `yaml:"discord"`

	// Health configures the liveness HTTP endpoint.
	Health HealthConfig `yaml:"health"`

	// Admin configures the local admin socket.
	Admin AdminConfig `yaml:"admin"`

	// Reminders configures the reminder scan loop.
	Reminders RemindersConfig `yaml:"reminders"`
}

// DiscordConfig configures the Discord gateway.
type DiscordConfig struct {
	// GuildID scopes slash-command registration to a single guild.
	// Empty registers commands globally (slower to propagate, but
	// correct for multi-guild deployments).
	GuildID string `yaml:"guild_id"`
}

// HealthConfig configures the liveness HTTP server.
type HealthConfig struct {
	// Address is the TCP listen address (e.g., ":8080"). Empty
	// disables the health server.
	Address string `yaml:"address"`
}

// AdminConfig configures the admin socket.
type AdminConfig struct {
	// Socket is the Unix socket path for rollcall-admin queries.
	// Empty disables the socket server.
	Socket string `yaml:"socket"`
}

// RemindersConfig configures the reminder scan loop.
type RemindersConfig struct {
	// Interval is the scan cadence as a Go duration string
	// (e.g., "1m"). Interval only affects reminder latency, not
	// correctness: the scan is idempotent once an event's flags are
	// set.
	Interval string `yaml:"interval"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Health:    HealthConfig{Address: ":8080"},
		Admin:     AdminConfig{Socket: "/run/rollcall/admin.sock"},
		Reminders: RemindersConfig{Interval: "1m"},
	}
}

// Load reads the config file at path. If path is empty, the
// ROLLCALL_CONFIG environment variable is consulted; if that is also
// empty, Default() is returned. Unknown fields are rejected so typos
// fail loudly instead of silently using defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that cannot be verified by the yaml
// decoder alone.
func (c Config) Validate() error {
	if _, err := c.ReminderInterval(); err != nil {
		return err
	}
	return nil
}

// ReminderInterval parses the reminder scan interval. Defaults to one
// minute when unset.
func (c Config) ReminderInterval() (time.Duration, error) {
	if c.Reminders.Interval == "" {
		return time.Minute, nil
	}
	interval, err := time.ParseDuration(c.Reminders.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid reminders.interval %q: %w", c.Reminders.Interval, err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("reminders.interval must be positive, got %q", c.Reminders.Interval)
	}
	return interval, nil
}

// BotToken reads the Discord token from the environment.
func BotToken() (string, error) {
	token := os.Getenv(TokenEnvVar)
	if token == "" {
		return "", fmt.Errorf("%s is not set", TokenEnvVar)
	}
	return token, nil
}

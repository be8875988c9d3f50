// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Slash command names.
const (
	commandCreateEvent = "create_event"
	commandListEvents  = "list_events"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        commandCreateEvent,
		Description: "Create a new event (interactive setup)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "event_name",
				Description: "Name for the new event",
				Required:    true,
				MaxLength:   100,
			},
		},
	},
	{
		Name:        commandListEvents,
		Description: "Show all upcoming events",
	},
}

// registerCommands overwrites the guild's command set with ours.
// Guild-scoped registration propagates immediately, unlike global
// commands which Discord caches for up to an hour.
func (g *Gateway) registerCommands() error {
	registered, err := g.session.ApplicationCommandBulkOverwrite(g.session.State.User.ID, g.guildID, commands)
	if err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	g.logger.Info("slash commands registered",
		"count", len(registered),
		"guild_id", g.guildID,
	)
	return nil
}

// handleCreateEvent opens the setup modal, pre-filling the name from
// the command option.
func (g *Gateway) handleCreateEvent(interaction *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	eventName := ""
	if len(data.Options) > 0 {
		eventName = data.Options[0].StringValue()
	}

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: setupModal(eventName),
	})
	if err != nil {
		g.logger.Error("opening setup modal failed", "error", err)
	}
}

// handleListEvents replies with a public summary embed of every event.
func (g *Gateway) handleListEvents(interaction *discordgo.InteractionCreate) {
	summaries := g.registry.Events()
	if len(summaries) == 0 {
		g.replyEphemeral(interaction, "No events created yet!")
		return
	}

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{listEmbed(summaries)},
		},
	})
	if err != nil {
		g.logger.Error("list reply failed", "error", err)
	}
}

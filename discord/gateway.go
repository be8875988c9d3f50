// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/rollcall-project/rollcall/roster"
)

// Gateway is the Discord-facing half of the bot: one gateway session,
// the interaction dispatcher, and the in-flight event-setup drafts.
type Gateway struct {
	session  *discordgo.Session
	registry *roster.Registry
	guildID  string
	logger   *slog.Logger

	connected atomic.Bool

	// drafts holds per-user event-setup state between the setup modal
	// and the Finish/Cancel button. Keyed by user ID: one draft per
	// user at a time, a new /create_event replaces the old draft.
	mu     sync.Mutex
	drafts map[string]*setupDraft
}

// New builds a gateway for the given bot token. The session is not
// opened; call Open once the rest of the process is wired up.
func New(token, guildID string, registry *roster.Registry, logger *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	gateway := &Gateway{
		session:  session,
		registry: registry,
		guildID:  guildID,
		logger:   logger,
		drafts:   make(map[string]*setupDraft),
	}

	session.AddHandler(gateway.handleReady)
	session.AddHandler(gateway.handleDisconnect)
	session.AddHandler(gateway.handleInteraction)
	return gateway, nil
}

// Open connects to the gateway and registers the slash commands.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}
	if err := g.registerCommands(); err != nil {
		g.session.Close()
		return err
	}
	return nil
}

// Close shuts down the gateway session.
func (g *Gateway) Close() error {
	return g.session.Close()
}

// Connected reports whether the gateway session is currently up. The
// liveness endpoint exposes this.
func (g *Gateway) Connected() bool {
	return g.connected.Load()
}

func (g *Gateway) handleReady(_ *discordgo.Session, ready *discordgo.Ready) {
	g.connected.Store(true)
	g.logger.Info("discord gateway ready",
		"user_id", ready.User.ID,
		"username", ready.User.Username,
	)
}

func (g *Gateway) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	g.connected.Store(false)
	g.logger.Warn("discord gateway disconnected")
}

// handleInteraction routes every interaction the bot receives. A panic
// in a handler is contained here: the registry mutates under a single
// lock section, so no partial state survives, and the user gets a
// generic ephemeral failure.
func (g *Gateway) handleInteraction(_ *discordgo.Session, interaction *discordgo.InteractionCreate) {
	defer func() {
		if recovered := recover(); recovered != nil {
			g.logger.Error("panic handling interaction",
				"panic", recovered,
				"interaction_type", interaction.Type.String(),
			)
			g.replyEphemeral(interaction, "❌ Something went wrong!")
		}
	}()

	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		data := interaction.ApplicationCommandData()
		switch data.Name {
		case commandCreateEvent:
			g.handleCreateEvent(interaction, data)
		case commandListEvents:
			g.handleListEvents(interaction)
		default:
			g.logger.Warn("unknown command", "name", data.Name)
		}

	case discordgo.InteractionModalSubmit:
		data := interaction.ModalSubmitData()
		switch {
		case data.CustomID == setupModalID:
			g.handleSetupModal(interaction, data)
		case strings.HasPrefix(data.CustomID, quantityModalPrefix):
			role := strings.TrimPrefix(data.CustomID, quantityModalPrefix)
			g.handleQuantityModal(interaction, data, role)
		default:
			g.logger.Warn("unknown modal", "custom_id", data.CustomID)
		}

	case discordgo.InteractionMessageComponent:
		data := interaction.MessageComponentData()
		switch {
		case data.CustomID == setupTypeID:
			g.handleTypeSelect(interaction, data)
		case data.CustomID == setupRoleID:
			g.handleRoleSelect(interaction, data)
		case data.CustomID == setupFinishID:
			g.handleFinish(interaction)
		case data.CustomID == setupCancelID:
			g.handleCancel(interaction)
		default:
			eventID, kind, ok := parseEventCustomID(data.CustomID)
			if !ok {
				g.logger.Warn("unknown component", "custom_id", data.CustomID)
				return
			}
			switch kind {
			case "core":
				g.handleCoreSelect(interaction, data, eventID)
			case "special":
				g.handleSpecialSelect(interaction, data, eventID)
			case "leave":
				g.handleLeave(interaction, eventID)
			}
		}
	}
}

// interactionUser returns the acting user. Guild interactions carry a
// Member, DM interactions a bare User.
func interactionUser(interaction *discordgo.InteractionCreate) *discordgo.User {
	if interaction.Member != nil {
		return interaction.Member.User
	}
	return interaction.User
}

// interactionDisplayName prefers the guild nickname over the account
// name, matching what members see in the channel.
func interactionDisplayName(interaction *discordgo.InteractionCreate) string {
	if interaction.Member != nil && interaction.Member.Nick != "" {
		return interaction.Member.Nick
	}
	user := interactionUser(interaction)
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// replyEphemeral sends a message only the acting user can see. Used
// for every error path and for setup-flow steps.
func (g *Gateway) replyEphemeral(interaction *discordgo.InteractionCreate, content string) {
	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		g.logger.Error("ephemeral reply failed", "error", err)
	}
}

// rosterErrorMessage maps the registry's error taxonomy to the
// user-facing ephemeral texts.
func rosterErrorMessage(err error) string {
	switch {
	case errors.Is(err, roster.ErrEventNotFound):
		return "❌ Event not found!"
	case errors.Is(err, roster.ErrRoleFull):
		return "❌ That role is full!"
	case errors.Is(err, roster.ErrNoCoreRoleYet):
		return "❌ You must pick a core role first!"
	case errors.Is(err, roster.ErrNotParticipant):
		return "❌ You're not in this event!"
	case errors.Is(err, roster.ErrUnknownRole):
		return "❌ That role is not available on this event!"
	case errors.Is(err, roster.ErrInvalidTimeFormat):
		return "❌ Invalid time format! Use: YYYY-MM-DD HH:MM (like 2026-12-25 20:00)"
	case errors.Is(err, roster.ErrNoCapacity):
		return "❌ You need at least 1 core role slot!"
	default:
		return "❌ Something went wrong!"
	}
}

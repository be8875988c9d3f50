// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollcall-project/rollcall/roster"
)

// noneSpecialValue is the select value for the "None (Remove special
// role)" entry. It maps to the registry's empty-string clear.
const noneSpecialValue = "__none__"

// eventCustomID builds a sign-up component ID, e.g. "event-core:3".
func eventCustomID(kind string, eventID int) string {
	return fmt.Sprintf("event-%s:%d", kind, eventID)
}

// parseEventCustomID is the inverse of eventCustomID.
func parseEventCustomID(customID string) (eventID int, kind string, ok bool) {
	rest, found := strings.CutPrefix(customID, "event-")
	if !found {
		return 0, "", false
	}
	kind, idText, found := strings.Cut(rest, ":")
	if !found {
		return 0, "", false
	}
	eventID, err := strconv.Atoi(idText)
	if err != nil {
		return 0, "", false
	}
	return eventID, kind, true
}

// handleCoreSelect signs the user up for (or moves them to) a core
// role, then re-renders the sign-up message in place.
func (g *Gateway) handleCoreSelect(interaction *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData, eventID int) {
	if len(data.Values) == 0 {
		return
	}
	role := data.Values[0]
	user := interactionUser(interaction)

	err := g.registry.JoinCore(eventID, user.ID, interactionDisplayName(interaction), role)
	if err != nil {
		g.replyEphemeral(interaction, rosterErrorMessage(err))
		return
	}
	g.logger.Info("core role joined",
		"event_id", eventID,
		"user_id", user.ID,
		"role", role,
	)
	g.updateEventMessage(interaction, eventID)
}

// handleSpecialSelect sets or clears the user's special role.
func (g *Gateway) handleSpecialSelect(interaction *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData, eventID int) {
	if len(data.Values) == 0 {
		return
	}
	role := data.Values[0]
	if role == noneSpecialValue {
		role = ""
	}
	user := interactionUser(interaction)

	err := g.registry.JoinSpecial(eventID, user.ID, role)
	if err != nil {
		g.replyEphemeral(interaction, rosterErrorMessage(err))
		return
	}
	g.logger.Info("special role updated",
		"event_id", eventID,
		"user_id", user.ID,
		"role", role,
	)
	g.updateEventMessage(interaction, eventID)
}

// handleLeave removes the user from the event entirely.
func (g *Gateway) handleLeave(interaction *discordgo.InteractionCreate, eventID int) {
	user := interactionUser(interaction)

	err := g.registry.Leave(eventID, user.ID)
	if err != nil {
		g.replyEphemeral(interaction, rosterErrorMessage(err))
		return
	}
	g.logger.Info("participant left", "event_id", eventID, "user_id", user.ID)
	g.updateEventMessage(interaction, eventID)
}

// updateEventMessage replaces the sign-up message the component sits
// on with a fresh render of the event.
func (g *Gateway) updateEventMessage(interaction *discordgo.InteractionCreate, eventID int) {
	event, ok := g.registry.Snapshot(eventID)
	if !ok {
		g.replyEphemeral(interaction, "❌ Event not found!")
		return
	}
	view := roster.BuildView(event)

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{eventEmbed(view)},
			Components: eventComponents(view),
		},
	})
	if err != nil {
		g.logger.Error("sign-up message update failed", "event_id", eventID, "error", err)
	}
}

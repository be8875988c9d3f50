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

// Custom IDs for the event-setup flow. The quantity modal carries the
// role name after the prefix.
const (
	setupModalID        = "setup-event"
	setupTypeID         = "setup-type"
	setupRoleID         = "setup-role"
	setupFinishID       = "setup-finish"
	setupCancelID       = "setup-cancel"
	quantityModalPrefix = "setup-quantity:"
)

// setupDraft is one user's in-flight event under construction: the
// modal fields plus the role capacities accumulated before Finish.
// The registry never sees a draft; CreateEvent runs only on Finish.
type setupDraft struct {
	name        string
	description string
	startTime   string
	eventType   roster.EventType
	channelID   string

	coreLimits    map[string]int
	specialLimits map[string]int
}

func (g *Gateway) draftFor(userID string) (*setupDraft, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	draft, ok := g.drafts[userID]
	return draft, ok
}

func (g *Gateway) putDraft(userID string, draft *setupDraft) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.drafts[userID] = draft
}

func (g *Gateway) dropDraft(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.drafts, userID)
}

// setupModal builds the step-1 modal: name, description, start time.
func setupModal(eventName string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: setupModalID,
		Title:    "Event Setup",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "event_name",
					Label:       "Event Name",
					Style:       discordgo.TextInputShort,
					Placeholder: "Enter event name...",
					Value:       eventName,
					Required:    true,
					MaxLength:   100,
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "description",
					Label:       "Description",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "Enter event description...",
					Required:    true,
					MaxLength:   500,
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "event_time",
					Label:       "Event Time",
					Style:       discordgo.TextInputShort,
					Placeholder: "YYYY-MM-DD HH:MM (like 2026-12-25 20:00)",
					Required:    true,
					MaxLength:   16,
				},
			}},
		},
	}
}

// handleSetupModal validates the time up front so the user finds out
// immediately, not at Finish, then moves to the type-select step.
func (g *Gateway) handleSetupModal(interaction *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	startTime := modalTextValue(data, "event_time")
	if _, err := roster.ParseStartTime(startTime); err != nil {
		g.replyEphemeral(interaction, rosterErrorMessage(err))
		return
	}

	draft := &setupDraft{
		name:          modalTextValue(data, "event_name"),
		description:   modalTextValue(data, "description"),
		startTime:     startTime,
		channelID:     interaction.ChannelID,
		coreLimits:    make(map[string]int),
		specialLimits: make(map[string]int),
	}
	g.putDraft(interactionUser(interaction).ID, draft)

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title: "🎮 Step 2: Select Event Type",
				Description: fmt.Sprintf("**Event:** %s\n**Description:** %s\n**Time:** %s",
					draft.name, draft.description, draft.startTime),
				Color: colorBlue,
			}},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{typeSelect()}},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		g.logger.Error("type-select step failed", "error", err)
	}
}

// typeSelect lists the fixed event types in menu order.
func typeSelect() discordgo.SelectMenu {
	types := roster.EventTypes()
	options := make([]discordgo.SelectMenuOption, 0, len(types))
	for _, eventType := range types {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(eventType),
			Value: string(eventType),
			Emoji: &discordgo.ComponentEmoji{Name: eventType.Emoji()},
		})
	}
	return discordgo.SelectMenu{
		CustomID:    setupTypeID,
		Placeholder: "Choose event type...",
		Options:     options,
	}
}

func (g *Gateway) handleTypeSelect(interaction *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	draft, ok := g.draftFor(interactionUser(interaction).ID)
	if !ok || len(data.Values) == 0 {
		g.replyEphemeral(interaction, "❌ Setup expired, run /create_event again.")
		return
	}
	draft.eventType = roster.EventType(data.Values[0])

	g.updateSetupMessage(interaction, draft, nil)
}

// roleSetupComponents is the step-3 view: one select across both role
// catalogs, plus Finish and Cancel.
func roleSetupComponents() []discordgo.MessageComponent {
	var options []discordgo.SelectMenuOption
	for _, spec := range roster.CoreRoles() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       spec.Name,
			Value:       spec.Name,
			Description: "Core role",
			Emoji:       &discordgo.ComponentEmoji{Name: spec.Emoji},
		})
	}
	// A Discord select holds at most 25 options; with 9 core roles
	// that leaves room for 16 special roles.
	for _, spec := range roster.SpecialRoles() {
		if len(options) == 25 {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       spec.Name,
			Value:       spec.Name,
			Description: "Special role",
			Emoji:       &discordgo.ComponentEmoji{Name: spec.Emoji},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    setupRoleID,
				Placeholder: "Select a role to add...",
				Options:     options,
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: setupFinishID,
				Label:    "Finish Event Creation",
				Style:    discordgo.SuccessButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
			},
			discordgo.Button{
				CustomID: setupCancelID,
				Label:    "Cancel",
				Style:    discordgo.DangerButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
			},
		}},
	}
}

// setupSummary renders the draft's current state for the step-3 embed.
func setupSummary(draft *setupDraft) string {
	formatLimits := func(catalog []roster.RoleSpec, limits map[string]int) string {
		var lines []string
		for _, spec := range catalog {
			if limits[spec.Name] > 0 {
				lines = append(lines, fmt.Sprintf("• %s: %d", spec.Name, limits[spec.Name]))
			}
		}
		if len(lines) == 0 {
			return "None"
		}
		return strings.Join(lines, "\n")
	}

	return fmt.Sprintf("**Event:** %s\n**Type:** %s\n**Time:** %s\n\n**Core Roles:**\n%s\n\n**Special Roles:**\n%s",
		draft.name, draft.eventType, draft.startTime,
		formatLimits(roster.CoreRoles(), draft.coreLimits),
		formatLimits(roster.SpecialRoles(), draft.specialLimits))
}

// updateSetupMessage edits the ephemeral setup message in place with
// the step-3 view. extraField, when set, confirms the last change.
func (g *Gateway) updateSetupMessage(interaction *discordgo.InteractionCreate, draft *setupDraft, extraField *discordgo.MessageEmbedField) {
	embed := &discordgo.MessageEmbed{
		Title:       "🎯 Step 3: Add Roles",
		Description: setupSummary(draft),
		Color:       colorGreen,
	}
	if extraField != nil {
		embed.Fields = append(embed.Fields, extraField)
	}

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: roleSetupComponents(),
		},
	})
	if err != nil {
		g.logger.Error("setup message update failed", "error", err)
	}
}

// handleRoleSelect asks how many slots the chosen role gets.
func (g *Gateway) handleRoleSelect(interaction *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	if len(data.Values) == 0 {
		return
	}
	role := data.Values[0]

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: quantityModalPrefix + role,
			Title:    "Set Role Quantity",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "quantity",
						Label:       fmt.Sprintf("How many %s?", role),
						Style:       discordgo.TextInputShort,
						Placeholder: "Enter number (e.g., 2)",
						Required:    true,
						MaxLength:   2,
					},
				}},
			},
		},
	})
	if err != nil {
		g.logger.Error("quantity modal failed", "error", err)
	}
}

// handleQuantityModal records the capacity in the draft. Quantity 0
// removes the role again.
func (g *Gateway) handleQuantityModal(interaction *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData, role string) {
	draft, ok := g.draftFor(interactionUser(interaction).ID)
	if !ok {
		g.replyEphemeral(interaction, "❌ Setup expired, run /create_event again.")
		return
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(modalTextValue(data, "quantity")))
	if err != nil {
		g.replyEphemeral(interaction, "❌ Please enter a valid number!")
		return
	}
	if quantity < 0 {
		g.replyEphemeral(interaction, "❌ Quantity must be 0 or positive!")
		return
	}

	switch {
	case roster.IsCoreRole(role):
		draft.coreLimits[role] = quantity
	case roster.IsSpecialRole(role):
		draft.specialLimits[role] = quantity
	default:
		g.replyEphemeral(interaction, "❌ That role is not available!")
		return
	}

	field := &discordgo.MessageEmbedField{
		Name:  "✅ Role Added",
		Value: fmt.Sprintf("%s: %d slots", role, quantity),
	}
	if quantity == 0 {
		field.Name = "✅ Role Removed"
		field.Value = fmt.Sprintf("%s removed from event", role)
	}
	g.updateSetupMessage(interaction, draft, field)
}

// handleFinish creates the event and posts the public sign-up message
// to the channel the setup started in.
func (g *Gateway) handleFinish(interaction *discordgo.InteractionCreate) {
	userID := interactionUser(interaction).ID
	draft, ok := g.draftFor(userID)
	if !ok {
		g.replyEphemeral(interaction, "❌ Setup expired, run /create_event again.")
		return
	}

	eventID, err := g.registry.CreateEvent(roster.CreateEventInput{
		Name:          draft.name,
		Description:   draft.description,
		Type:          draft.eventType,
		StartTime:     draft.startTime,
		CoreLimits:    draft.coreLimits,
		SpecialLimits: draft.specialLimits,
		OriginChannel: draft.channelID,
	})
	if err != nil {
		g.replyEphemeral(interaction, rosterErrorMessage(err))
		return
	}

	event, _ := g.registry.Snapshot(eventID)
	view := roster.BuildView(event)
	message, err := g.session.ChannelMessageSendComplex(draft.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{eventEmbed(view)},
		Components: eventComponents(view),
	})
	if err != nil {
		g.logger.Error("posting sign-up message failed",
			"event_id", eventID,
			"channel_id", draft.channelID,
			"error", err,
		)
		g.replyEphemeral(interaction, "❌ Error creating event!")
		return
	}
	if err := g.registry.SetOrigin(eventID, draft.channelID, message.ID); err != nil {
		g.logger.Error("recording event origin failed", "event_id", eventID, "error", err)
	}
	g.dropDraft(userID)

	g.logger.Info("event created",
		"event_id", eventID,
		"name", draft.name,
		"type", draft.eventType,
		"start_time", draft.startTime,
	)

	err = g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "✅ **Event Created Successfully!**",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		g.logger.Error("finish confirmation failed", "error", err)
	}
}

func (g *Gateway) handleCancel(interaction *discordgo.InteractionCreate) {
	g.dropDraft(interactionUser(interaction).ID)

	err := g.session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "❌ Event creation cancelled.",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		g.logger.Error("cancel confirmation failed", "error", err)
	}
}

// modalTextValue extracts a text input's value from a modal submit by
// its custom ID. Empty when absent.
func modalTextValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			input, ok := inner.(*discordgo.TextInput)
			if ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rollcall-project/rollcall/roster"
)

// Embed accent colors.
const (
	colorBlue   = 0x0099ff
	colorGreen  = 0x00ff00
	colorOrange = 0xff9900
)

// eventEmbed renders the public sign-up message body from an event
// view: a field per configured role listing its current holders.
func eventEmbed(view roster.EventView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", view.Type.Emoji(), view.Name),
		Description: fmt.Sprintf("**Type:** %s\n%s", view.Type, view.Description),
		Color:       colorGreen,
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "📅 Event Time",
		Value: view.StartTime,
	})

	embed.Fields = append(embed.Fields, sectionHeader("⭐ **CORE ROLES** ⭐"))
	for _, entry := range view.CoreRoster {
		embed.Fields = append(embed.Fields, rosterField(entry))
	}

	if len(view.SpecialRoster) > 0 {
		embed.Fields = append(embed.Fields, sectionHeader("🎯 **SPECIAL ROLES** 🎯"))
		for _, entry := range view.SpecialRoster {
			embed.Fields = append(embed.Fields, rosterField(entry))
		}
	}

	return embed
}

// sectionHeader is a full-width divider field. The API rejects empty
// field values, so the value is a zero-width space.
func sectionHeader(name string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: "\u200b"}
}

// rosterField renders one role's holders, "Empty" when vacant.
func rosterField(entry roster.RosterEntry) *discordgo.MessageEmbedField {
	value := "Empty"
	if len(entry.Members) > 0 {
		value = strings.Join(entry.Members, "\n")
	}
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s %s (%d/%d)", entry.Emoji, entry.Role, entry.Current, entry.Limit),
		Value:  value,
		Inline: true,
	}
}

// eventComponents builds the sign-up controls: core role select,
// special role select (only when the event has special slots), and a
// leave button.
func eventComponents(view roster.EventView) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    eventCustomID("core", view.ID),
				Placeholder: "⭐ Choose your CORE role (required)...",
				Options:     roleOptions(view.CoreOptions),
			},
		}},
	}

	if view.HasSpecialRoles() {
		options := []discordgo.SelectMenuOption{{
			Label: "None (Remove special role)",
			Value: noneSpecialValue,
			Emoji: &discordgo.ComponentEmoji{Name: "❌"},
		}}
		options = append(options, roleOptions(view.SpecialOptions)...)

		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    eventCustomID("special", view.ID),
				Placeholder: "🎯 Choose special role (optional)...",
				Options:     options,
			},
		}})
	}

	components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: eventCustomID("leave", view.ID),
			Label:    "Leave Event",
			Style:    discordgo.DangerButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
		},
	}})

	return components
}

// roleOptions converts view options into select entries. Full roles
// stay selectable: the registry rejects the join (except for the
// holder reselecting their own role, which must go through).
func roleOptions(options []roster.RoleOption) []discordgo.SelectMenuOption {
	out := make([]discordgo.SelectMenuOption, 0, len(options))
	for _, option := range options {
		out = append(out, discordgo.SelectMenuOption{
			Label:       option.Label(),
			Value:       option.Role,
			Description: fmt.Sprintf("%d slots available", option.Available()),
			Emoji:       &discordgo.ComponentEmoji{Name: option.Emoji},
		})
	}
	return out
}

// listEmbed renders the /list_events summary, one field per event.
func listEmbed(summaries []roster.EventSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📅 Upcoming Events",
		Color: colorBlue,
	}
	for _, summary := range summaries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s (ID: %d)", summary.Name, summary.ID),
			Value: fmt.Sprintf("**Type:** %s\n**Time:** %s\n**Participants:** %d/%d",
				summary.Type,
				summary.StartTime.Format(roster.StartTimeLayout),
				summary.ParticipantCount,
				summary.TotalCoreSlots),
		})
	}
	return embed
}

// reminderContent builds the mention line preceding the reminder
// embed, one mention per participant.
func reminderContent(reminder roster.Reminder) string {
	mentions := make([]string, 0, len(reminder.ParticipantIDs))
	for _, userID := range reminder.ParticipantIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", userID))
	}
	return strings.Join(mentions, " ")
}

// reminderEmbed renders the reminder body.
func reminderEmbed(reminder roster.Reminder) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⏰ Event Reminder: %s", reminder.EventName),
		Description: fmt.Sprintf("Your event starts in %s!", reminder.Label),
		Color:       colorOrange,
	}
}

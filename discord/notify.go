// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rollcall-project/rollcall/roster"
)

// DeliverReminder posts a reminder to the event's origin channel,
// mentioning every participant. Events with no participants or no
// recorded origin are skipped silently: there is nobody to remind or
// nowhere to post.
//
// Delivery is at-most-once. The registry flipped the reminder flag
// before handing the reminder out, so a send failure here is logged by
// the caller and never retried.
func (g *Gateway) DeliverReminder(reminder roster.Reminder) error {
	if len(reminder.ParticipantIDs) == 0 || reminder.OriginChannel == "" {
		return nil
	}

	_, err := g.session.ChannelMessageSendComplex(reminder.OriginChannel, &discordgo.MessageSend{
		Content: reminderContent(reminder),
		Embeds:  []*discordgo.MessageEmbed{reminderEmbed(reminder)},
	})
	if err != nil {
		return fmt.Errorf("sending reminder for event %d: %w", reminder.EventID, err)
	}
	return nil
}

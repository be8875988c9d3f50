// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/rollcall-project/rollcall/lib/codec"
	"github.com/rollcall-project/rollcall/lib/service"
	"github.com/rollcall-project/rollcall/roster"
)

// Admin socket wire types. All responses use formatted time strings so
// rollcall-admin can print them verbatim.

type statusResponse struct {
	UptimeSeconds    int64 `cbor:"uptime_seconds"`
	DiscordConnected bool  `cbor:"discord_connected"`
	Events           int   `cbor:"events"`
}

type eventSummary struct {
	ID               int    `cbor:"id"`
	Name             string `cbor:"name"`
	Type             string `cbor:"type"`
	StartTime        string `cbor:"start_time"`
	ParticipantCount int    `cbor:"participant_count"`
	TotalCoreSlots   int    `cbor:"total_core_slots"`
}

type listResponse struct {
	Events []eventSummary `cbor:"events"`
}

type participantDetail struct {
	UserID      string `cbor:"user_id"`
	DisplayName string `cbor:"display_name"`
	CoreRole    string `cbor:"core_role"`
	SpecialRole string `cbor:"special_role,omitempty"`
}

type eventDetail struct {
	ID                int                 `cbor:"id"`
	Name              string              `cbor:"name"`
	Description       string              `cbor:"description"`
	Type              string              `cbor:"type"`
	StartTime         string              `cbor:"start_time"`
	CoreLimits        map[string]int      `cbor:"core_limits"`
	SpecialLimits     map[string]int      `cbor:"special_limits,omitempty"`
	Participants      []participantDetail `cbor:"participants"`
	RemindedOneHour   bool                `cbor:"reminded_1h"`
	RemindedThirtyMin bool                `cbor:"reminded_30m"`
	OriginChannel     string              `cbor:"origin_channel,omitempty"`
	OriginMessage     string              `cbor:"origin_message,omitempty"`
}

// registerActions wires the read-only admin queries onto the socket
// server.
func (b *botService) registerActions(server *service.SocketServer) {
	server.Handle("status", b.handleStatus)
	server.Handle("list", b.handleList)
	server.Handle("show", b.handleShow)
}

func (b *botService) handleStatus(_ context.Context, _ []byte) (any, error) {
	return statusResponse{
		UptimeSeconds:    int64(b.clock.Now().Sub(b.startedAt).Seconds()),
		DiscordConnected: b.gateway.Connected(),
		Events:           b.registry.Len(),
	}, nil
}

func (b *botService) handleList(_ context.Context, _ []byte) (any, error) {
	summaries := b.registry.Events()
	events := make([]eventSummary, 0, len(summaries))
	for _, summary := range summaries {
		events = append(events, eventSummary{
			ID:               summary.ID,
			Name:             summary.Name,
			Type:             string(summary.Type),
			StartTime:        summary.StartTime.Format(roster.StartTimeLayout),
			ParticipantCount: summary.ParticipantCount,
			TotalCoreSlots:   summary.TotalCoreSlots,
		})
	}
	return listResponse{Events: events}, nil
}

func (b *botService) handleShow(_ context.Context, raw []byte) (any, error) {
	var request struct {
		EventID int `cbor:"event_id"`
	}
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if request.EventID == 0 {
		return nil, fmt.Errorf("missing required field: event_id")
	}

	event, ok := b.registry.Snapshot(request.EventID)
	if !ok {
		return nil, fmt.Errorf("event %d: %w", request.EventID, roster.ErrEventNotFound)
	}
	return describeEvent(event), nil
}

// describeEvent flattens a snapshot into the wire shape. Limit maps
// carry only configured roles; the zeroed catalog remainder is noise
// for an operator.
func describeEvent(event roster.Event) eventDetail {
	detail := eventDetail{
		ID:                event.ID,
		Name:              event.Name,
		Description:       event.Description,
		Type:              string(event.Type),
		StartTime:         event.StartTime.Format(roster.StartTimeLayout),
		CoreLimits:        configuredLimits(event.CoreLimits),
		SpecialLimits:     configuredLimits(event.SpecialLimits),
		RemindedOneHour:   event.RemindedOneHour,
		RemindedThirtyMin: event.RemindedThirtyMin,
		OriginChannel:     event.OriginChannel,
		OriginMessage:     event.OriginMessage,
	}

	detail.Participants = make([]participantDetail, 0, len(event.Participants))
	for userID, participant := range event.Participants {
		detail.Participants = append(detail.Participants, participantDetail{
			UserID:      userID,
			DisplayName: participant.DisplayName,
			CoreRole:    participant.CoreRole,
			SpecialRole: participant.SpecialRole,
		})
	}
	sort.Slice(detail.Participants, func(i, j int) bool {
		return detail.Participants[i].UserID < detail.Participants[j].UserID
	})
	return detail
}

func configuredLimits(limits map[string]int) map[string]int {
	configured := make(map[string]int)
	for role, limit := range limits {
		if limit > 0 {
			configured[role] = limit
		}
	}
	return configured
}

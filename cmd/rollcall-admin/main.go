// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// rollcall-admin queries a running rollcall-bot over its admin socket.
//
// Usage:
//
//	rollcall-admin [flags] status
//	rollcall-admin [flags] list
//	rollcall-admin [flags] show <event-id>
//
// Output is human-readable by default; --json prints the raw response
// for scripting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/rollcall-project/rollcall/lib/service"
	"github.com/rollcall-project/rollcall/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		socketPath  string
		asJSON      bool
		showVersion bool
	)
	pflag.StringVar(&socketPath, "socket", "/run/rollcall/admin.sock", "path to the bot's admin socket")
	pflag.BoolVar(&asJSON, "json", false, "print the response as JSON")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("rollcall-admin %s\n", version.Info())
		return nil
	}

	args := pflag.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: rollcall-admin [flags] status|list|show <event-id>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := service.NewClient(socketPath)

	switch args[0] {
	case "status":
		return runStatus(ctx, client, asJSON)
	case "list":
		return runList(ctx, client, asJSON)
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("usage: rollcall-admin [flags] show <event-id>")
		}
		eventID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid event ID %q", args[1])
		}
		return runShow(ctx, client, eventID, asJSON)
	default:
		return fmt.Errorf("unknown command %q (want status, list, or show)", args[0])
	}
}

// Wire shapes mirror the bot's admin socket responses.

type statusResponse struct {
	UptimeSeconds    int64 `cbor:"uptime_seconds" json:"uptime_seconds"`
	DiscordConnected bool  `cbor:"discord_connected" json:"discord_connected"`
	Events           int   `cbor:"events" json:"events"`
}

type eventSummary struct {
	ID               int    `cbor:"id" json:"id"`
	Name             string `cbor:"name" json:"name"`
	Type             string `cbor:"type" json:"type"`
	StartTime        string `cbor:"start_time" json:"start_time"`
	ParticipantCount int    `cbor:"participant_count" json:"participant_count"`
	TotalCoreSlots   int    `cbor:"total_core_slots" json:"total_core_slots"`
}

type listResponse struct {
	Events []eventSummary `cbor:"events" json:"events"`
}

type participantDetail struct {
	UserID      string `cbor:"user_id" json:"user_id"`
	DisplayName string `cbor:"display_name" json:"display_name"`
	CoreRole    string `cbor:"core_role" json:"core_role"`
	SpecialRole string `cbor:"special_role,omitempty" json:"special_role,omitempty"`
}

type eventDetail struct {
	ID                int                 `cbor:"id" json:"id"`
	Name              string              `cbor:"name" json:"name"`
	Description       string              `cbor:"description" json:"description"`
	Type              string              `cbor:"type" json:"type"`
	StartTime         string              `cbor:"start_time" json:"start_time"`
	CoreLimits        map[string]int      `cbor:"core_limits" json:"core_limits"`
	SpecialLimits     map[string]int      `cbor:"special_limits,omitempty" json:"special_limits,omitempty"`
	Participants      []participantDetail `cbor:"participants" json:"participants"`
	RemindedOneHour   bool                `cbor:"reminded_1h" json:"reminded_1h"`
	RemindedThirtyMin bool                `cbor:"reminded_30m" json:"reminded_30m"`
	OriginChannel     string              `cbor:"origin_channel,omitempty" json:"origin_channel,omitempty"`
	OriginMessage     string              `cbor:"origin_message,omitempty" json:"origin_message,omitempty"`
}

func runStatus(ctx context.Context, client *service.Client, asJSON bool) error {
	var status statusResponse
	if err := client.Call(ctx, "status", nil, &status); err != nil {
		return err
	}
	if asJSON {
		return printJSON(status)
	}

	fmt.Printf("uptime:            %s\n", (time.Duration(status.UptimeSeconds) * time.Second).String())
	fmt.Printf("discord connected: %t\n", status.DiscordConnected)
	fmt.Printf("events:            %d\n", status.Events)
	return nil
}

func runList(ctx context.Context, client *service.Client, asJSON bool) error {
	var list listResponse
	if err := client.Call(ctx, "list", nil, &list); err != nil {
		return err
	}
	if asJSON {
		return printJSON(list)
	}

	if len(list.Events) == 0 {
		fmt.Println("no events")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tTYPE\tSTART\tSIGNED UP")
	for _, event := range list.Events {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%d/%d\n",
			event.ID, event.Name, event.Type, event.StartTime,
			event.ParticipantCount, event.TotalCoreSlots)
	}
	return writer.Flush()
}

func runShow(ctx context.Context, client *service.Client, eventID int, asJSON bool) error {
	var detail eventDetail
	if err := client.Call(ctx, "show", map[string]any{"event_id": eventID}, &detail); err != nil {
		return err
	}
	if asJSON {
		return printJSON(detail)
	}

	fmt.Printf("event %d: %s\n", detail.ID, detail.Name)
	fmt.Printf("  type:        %s\n", detail.Type)
	fmt.Printf("  start:       %s\n", detail.StartTime)
	if detail.Description != "" {
		fmt.Printf("  description: %s\n", detail.Description)
	}
	fmt.Printf("  reminders:   1h=%t 30m=%t\n", detail.RemindedOneHour, detail.RemindedThirtyMin)

	fmt.Println("  core limits:")
	printLimits(detail.CoreLimits)
	if len(detail.SpecialLimits) > 0 {
		fmt.Println("  special limits:")
		printLimits(detail.SpecialLimits)
	}

	if len(detail.Participants) == 0 {
		fmt.Println("  participants: none")
		return nil
	}
	fmt.Println("  participants:")
	for _, participant := range detail.Participants {
		line := fmt.Sprintf("    %s (%s): %s", participant.DisplayName, participant.UserID, participant.CoreRole)
		if participant.SpecialRole != "" {
			line += " + " + participant.SpecialRole
		}
		fmt.Println(line)
	}
	return nil
}

func printLimits(limits map[string]int) {
	roles := make([]string, 0, len(limits))
	for role := range limits {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		fmt.Printf("    %s: %d\n", role, limits[role])
	}
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

// EventType is one of the fixed activity categories an event can be
// created under.
type EventType string

// The complete set of event types. CreateEvent rejects anything else.
const (
	EventFractals      EventType = "Fractals"
	EventRaid          EventType = "Raid"
	EventWvW           EventType = "WvW"
	EventMeta          EventType = "Meta"
	EventGuildMissions EventType = "Guild Missions"
	EventPvP           EventType = "PvP"
	EventChill         EventType = "Chill Sessions"
)

// eventTypes lists all valid event types in menu order, with the
// emoji the renderer shows next to each.
var eventTypes = []struct {
	Type  EventType
	Emoji string
}{
	{EventFractals, "🔺"},
	{EventRaid, "⚔️"},
	{EventWvW, "🏰"},
	{EventMeta, "🌟"},
	{EventGuildMissions, "🏛️"},
	{EventPvP, "⚡"},
	{EventChill, "😎"},
}

// Valid reports whether t is a member of the fixed event type set.
func (t EventType) Valid() bool {
	for _, entry := range eventTypes {
		if entry.Type == t {
			return true
		}
	}
	return false
}

// Emoji returns the display emoji for the event type, or a generic
// game emoji for unknown values.
func (t EventType) Emoji() string {
	for _, entry := range eventTypes {
		if entry.Type == t {
			return entry.Emoji
		}
	}
	return "🎮"
}

// EventTypes returns all valid event types in menu order.
func EventTypes() []EventType {
	types := make([]EventType, len(eventTypes))
	for i, entry := range eventTypes {
		types[i] = entry.Type
	}
	return types
}

// RoleKind distinguishes the two role categories.
type RoleKind string

const (
	// KindCore is the mandatory role category. Every participant
	// holds exactly one core role.
	KindCore RoleKind = "core"

	// KindSpecial is the optional role category, gated on already
	// holding a core role.
	KindSpecial RoleKind = "special"
)

// RoleSpec describes one entry of a role catalog.
type RoleSpec struct {
	Name  string
	Emoji string
}

// coreRoles is the fixed core-role catalog, in display order. Every
// event's core limit map has exactly these keys.
var coreRoles = []RoleSpec{
	{"Fill", "👥"},
	{"Heal", "❤️"},
	{"Qheal", "💚"},
	{"Aheal", "💙"},
	{"PowerDPS", "⚔️"},
	{"CondiDPS", "🗡️"},
	{"QDPS", "🏹"},
	{"ADPS", "🔥"},
	{"Tank", "🛡️"},
}

// specialRoles is the fixed special-role catalog, in display order.
var specialRoles = []RoleSpec{
	{"Kite", "🏃"},
	{"Cannons", "💣"},
	{"Reflect", "🔄"},
	{"Tower", "🗼"},
	{"Back Warg", "🐺"},
	{"Hand Kite", "✋"},
	{"Super Speed", "⚡"},
	{"Throw", "🎯"},
	{"G1", "1️⃣"},
	{"G2 Backups", "2️⃣"},
	{"G3", "3️⃣"},
	{"Lamps", "💡"},
	{"Kite/Push", "🔄"},
	{"Off Tank", "🛡️"},
	{"Portals", "🌀"},
	{"Pylons", "⚡"},
}

// CoreRoles returns a copy of the core-role catalog.
func CoreRoles() []RoleSpec {
	out := make([]RoleSpec, len(coreRoles))
	copy(out, coreRoles)
	return out
}

// SpecialRoles returns a copy of the special-role catalog.
func SpecialRoles() []RoleSpec {
	out := make([]RoleSpec, len(specialRoles))
	copy(out, specialRoles)
	return out
}

// IsCoreRole reports whether name is in the core-role catalog.
func IsCoreRole(name string) bool {
	for _, spec := range coreRoles {
		if spec.Name == name {
			return true
		}
	}
	return false
}

// IsSpecialRole reports whether name is in the special-role catalog.
func IsSpecialRole(name string) bool {
	for _, spec := range specialRoles {
		if spec.Name == name {
			return true
		}
	}
	return false
}

// RoleEmoji returns the display emoji for a role from either catalog,
// or a generic emoji for unknown names.
func RoleEmoji(name string) string {
	for _, spec := range coreRoles {
		if spec.Name == name {
			return spec.Emoji
		}
	}
	for _, spec := range specialRoles {
		if spec.Name == name {
			return spec.Emoji
		}
	}
	return "🎮"
}

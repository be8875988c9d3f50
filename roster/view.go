// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
	"sort"
)

// RoleOption is one selectable role in a sign-up menu.
type RoleOption struct {
	Role    string
	Emoji   string
	Current int
	Limit   int
}

// Available returns the number of open slots.
func (o RoleOption) Available() int { return o.Limit - o.Current }

// Full reports whether the role is at capacity.
func (o RoleOption) Full() bool { return o.Current >= o.Limit }

// Label renders the menu label, e.g. "Tank (1/2)" or
// "Tank (2/2) - FULL".
func (o RoleOption) Label() string {
	label := fmt.Sprintf("%s (%d/%d)", o.Role, o.Current, o.Limit)
	if o.Full() {
		label += " - FULL"
	}
	return label
}

// RosterEntry is one role's line in the rendered event message: who
// currently holds it, against its capacity.
type RosterEntry struct {
	Role    string
	Emoji   string
	Current int
	Limit   int

	// Members are participant display names, sorted.
	Members []string
}

// EventView is the render-ready projection of an event snapshot:
// rosters for the message body and role options for the select menus.
// It contains only roles with declared slots, in catalog order, and
// is independent of any UI toolkit.
type EventView struct {
	ID          int
	Name        string
	Description string
	Type        EventType
	StartTime   string

	CoreRoster    []RosterEntry
	SpecialRoster []RosterEntry

	CoreOptions    []RoleOption
	SpecialOptions []RoleOption
}

// HasSpecialRoles reports whether any special role has declared
// slots. The special select menu is omitted entirely when false.
func (v EventView) HasSpecialRoles() bool {
	return len(v.SpecialOptions) > 0
}

// BuildView projects an event snapshot into its view-model. Pure
// function: it never touches the registry.
func BuildView(event Event) EventView {
	view := EventView{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Type:        event.Type,
		StartTime:   event.StartTime.Format(StartTimeLayout),
	}

	for _, spec := range coreRoles {
		limit := event.CoreLimits[spec.Name]
		if limit == 0 {
			continue
		}
		view.CoreRoster = append(view.CoreRoster, rosterEntry(event, spec, KindCore, limit))
		view.CoreOptions = append(view.CoreOptions, RoleOption{
			Role:    spec.Name,
			Emoji:   spec.Emoji,
			Current: event.occupancy(spec.Name, KindCore),
			Limit:   limit,
		})
	}

	for _, spec := range specialRoles {
		limit := event.SpecialLimits[spec.Name]
		if limit == 0 {
			continue
		}
		view.SpecialRoster = append(view.SpecialRoster, rosterEntry(event, spec, KindSpecial, limit))
		view.SpecialOptions = append(view.SpecialOptions, RoleOption{
			Role:    spec.Name,
			Emoji:   spec.Emoji,
			Current: event.occupancy(spec.Name, KindSpecial),
			Limit:   limit,
		})
	}

	return view
}

// rosterEntry collects the display names currently holding a role.
func rosterEntry(event Event, spec RoleSpec, kind RoleKind, limit int) RosterEntry {
	var members []string
	for _, participant := range event.Participants {
		held := participant.CoreRole
		if kind == KindSpecial {
			held = participant.SpecialRole
		}
		if held == spec.Name {
			members = append(members, participant.DisplayName)
		}
	}
	sort.Strings(members)

	return RosterEntry{
		Role:    spec.Name,
		Emoji:   spec.Emoji,
		Current: len(members),
		Limit:   limit,
		Members: members,
	}
}

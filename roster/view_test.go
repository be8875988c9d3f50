// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"reflect"
	"testing"
)

func TestRoleOptionLabel(t *testing.T) {
	tests := []struct {
		option RoleOption
		want   string
	}{
		{RoleOption{Role: "Tank", Current: 1, Limit: 2}, "Tank (1/2)"},
		{RoleOption{Role: "Tank", Current: 2, Limit: 2}, "Tank (2/2) - FULL"},
		{RoleOption{Role: "Kite", Current: 0, Limit: 1}, "Kite (0/1)"},
	}
	for _, test := range tests {
		if got := test.option.Label(); got != test.want {
			t.Errorf("Label() = %q, want %q", got, test.want)
		}
	}
}

func TestBuildViewOmitsZeroLimitRoles(t *testing.T) {
	registry := NewRegistry()
	input := makeInput()
	input.CoreLimits = map[string]int{"Heal": 1, "Tank": 2}
	id := mustCreate(t, registry, input)

	event, _ := registry.Snapshot(id)
	view := BuildView(event)

	// Catalog order, not declaration or alphabetical order: Heal
	// precedes Tank in the core catalog.
	if len(view.CoreOptions) != 2 {
		t.Fatalf("CoreOptions = %d entries, want 2", len(view.CoreOptions))
	}
	if view.CoreOptions[0].Role != "Heal" || view.CoreOptions[1].Role != "Tank" {
		t.Fatalf("core option order = %q, %q, want Heal, Tank",
			view.CoreOptions[0].Role, view.CoreOptions[1].Role)
	}
	if len(view.SpecialOptions) != 0 || view.HasSpecialRoles() {
		t.Fatalf("special options = %v, want none", view.SpecialOptions)
	}
	if len(view.CoreRoster) != 2 {
		t.Fatalf("CoreRoster = %d entries, want 2", len(view.CoreRoster))
	}
}

func TestBuildViewMembersSorted(t *testing.T) {
	registry := NewRegistry()
	input := makeInput()
	input.CoreLimits = map[string]int{"Heal": 3}
	id := mustCreate(t, registry, input)

	for user, name := range map[string]string{
		"user1": "Zed",
		"user2": "Aurene",
		"user3": "Mika",
	} {
		if err := registry.JoinCore(id, user, name, "Heal"); err != nil {
			t.Fatalf("JoinCore(%s): %v", user, err)
		}
	}

	event, _ := registry.Snapshot(id)
	view := BuildView(event)

	entry := view.CoreRoster[0]
	if entry.Role != "Heal" || entry.Current != 3 || entry.Limit != 3 {
		t.Fatalf("entry = %+v", entry)
	}
	want := []string{"Aurene", "Mika", "Zed"}
	if !reflect.DeepEqual(entry.Members, want) {
		t.Fatalf("Members = %v, want %v", entry.Members, want)
	}
}

func TestBuildViewSpecialRoles(t *testing.T) {
	registry := NewRegistry()
	input := makeInput()
	input.SpecialLimits = map[string]int{"Kite": 1, "Lamps": 2}
	id := mustCreate(t, registry, input)

	if err := registry.JoinCore(id, "user1", "Aurene", "Tank"); err != nil {
		t.Fatalf("JoinCore: %v", err)
	}
	if err := registry.JoinSpecial(id, "user1", "Kite"); err != nil {
		t.Fatalf("JoinSpecial: %v", err)
	}

	event, _ := registry.Snapshot(id)
	view := BuildView(event)

	if !view.HasSpecialRoles() {
		t.Fatal("HasSpecialRoles() = false, want true")
	}
	if len(view.SpecialOptions) != 2 {
		t.Fatalf("SpecialOptions = %d entries, want 2", len(view.SpecialOptions))
	}
	kite := view.SpecialOptions[0]
	if kite.Role != "Kite" || kite.Current != 1 || kite.Limit != 1 || !kite.Full() {
		t.Fatalf("Kite option = %+v", kite)
	}
	if got := kite.Label(); got != "Kite (1/1) - FULL" {
		t.Fatalf("Label() = %q", got)
	}
	lamps := view.SpecialOptions[1]
	if lamps.Role != "Lamps" || lamps.Available() != 2 {
		t.Fatalf("Lamps option = %+v", lamps)
	}
}

func TestBuildViewHeaderFields(t *testing.T) {
	registry := NewRegistry()
	input := makeInput()
	id := mustCreate(t, registry, input)

	event, _ := registry.Snapshot(id)
	view := BuildView(event)

	if view.ID != id || view.Name != input.Name || view.Description != input.Description {
		t.Fatalf("view header = %+v", view)
	}
	if view.Type != EventRaid {
		t.Fatalf("Type = %q", view.Type)
	}
	if view.StartTime != input.StartTime {
		t.Fatalf("StartTime = %q, want %q", view.StartTime, input.StartTime)
	}
}

func TestRoleEmojisPropagate(t *testing.T) {
	registry := NewRegistry()
	input := makeInput()
	input.CoreLimits = map[string]int{"Tank": 1}
	id := mustCreate(t, registry, input)

	event, _ := registry.Snapshot(id)
	view := BuildView(event)

	if view.CoreOptions[0].Emoji == "" {
		t.Fatal("core option missing emoji")
	}
	if view.CoreRoster[0].Emoji != view.CoreOptions[0].Emoji {
		t.Fatal("roster and option emoji disagree")
	}
}

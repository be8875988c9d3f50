// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"b": 2, "a": 1, "c": 3}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("same value produced different bytes:\n%x\n%x", first, second)
	}
}

func TestJSONTagFallback(t *testing.T) {
	data, err := Marshal(sample{Name: "weekly raid", Count: 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["name"] != "weekly raid" {
		t.Fatalf("field name not taken from json tag: %v", decoded)
	}
}

func TestDefaultMapTypeIsStringKeyed(t *testing.T) {
	data, err := Marshal(map[string]any{"outer": map[string]any{"inner": 1}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
	if _, ok := outer["outer"].(map[string]any); !ok {
		t.Fatalf("nested type = %T, want map[string]any", outer["outer"])
	}
}

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(sample{Name: "fractals"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got sample
	if err := NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "fractals" {
		t.Fatalf("decoded Name = %q, want %q", got.Name, "fractals")
	}
}

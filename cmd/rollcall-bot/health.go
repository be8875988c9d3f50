// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"net/http"
)

// healthStatus is the liveness endpoint's response body.
type healthStatus struct {
	Status           string `json:"status"`
	DiscordConnected bool   `json:"discord_connected"`
	Events           int    `json:"events"`
}

// healthHandler serves the liveness endpoint on "/" and "/health".
// The process being up to answer is the liveness signal; the Discord
// connection state is reported but does not fail the probe, since the
// gateway reconnects on its own.
func (b *botService) healthHandler() http.Handler {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(healthStatus{
			Status:           "ok",
			DiscordConnected: b.gateway.Connected(),
			Events:           b.registry.Len(),
		}); err != nil {
			b.logger.Debug("writing health response", "error", err)
		}
	}
	return http.HandlerFunc(handler)
}

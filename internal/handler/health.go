// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"os"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	contentRoot string
	startTime   time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(contentRoot string) *HealthHandler {
	return &HealthHandler{
		contentRoot: contentRoot,
		startTime:   time.Now(),
	}
}

// healthStatus is the /health response.
type healthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]check `json:"checks"`
}

// check represents a single health check result.
type check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	contentCheck := h.checkContentDir()

	overall := "healthy"
	status := http.StatusOK
	if contentCheck.Status != "healthy" {
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks: map[string]check{
			"content_dir": contentCheck,
		},
	})
}

// checkContentDir verifies the content root is a readable directory.
func (h *HealthHandler) checkContentDir() check {
	info, err := os.Stat(h.contentRoot)
	if err != nil {
		return check{Status: "unhealthy", Message: err.Error()}
	}
	if !info.IsDir() {
		return check{Status: "unhealthy", Message: h.contentRoot + " is not a directory"}
	}
	return check{Status: "healthy"}
}

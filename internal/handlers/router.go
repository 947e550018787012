// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/service"
)

// NewRouter builds the gateway's route table. The metricsHandler is
// optional; when nil the /metrics endpoint is not mounted.
func NewRouter(gatewayService *service.GatewayService, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	h := NewGatewayHandlers(gatewayService)

	r.Get("/user/{userId}/meetings", h.GetUserMeetings)
	r.Get("/meeting/{meetingId}/participants", h.GetMeetingParticipants)
	r.Get("/meeting/{meetingId}/details", h.GetMeetingDetails)

	r.Get("/livez", h.Livez)
	r.Get("/readyz", h.Readyz)

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// The boundary contract returns the same 404 body for unknown
	// routes and for known paths with the wrong method.
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package handlers contains the HTTP handlers for the gateway's
// collaborator-facing surface.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/service"
)

// Static error messages returned to clients. The provider's failure
// detail is logged, never forwarded.
const (
	msgUserMeetingsFailed        = "Failed to get user meetings"
	msgMeetingParticipantsFailed = "Failed to get meeting participants"
	msgMeetingDetailsFailed      = "Failed to get meeting details"
	msgRouteNotFound             = "API route does not exist"
)

// GatewayHandlers handles the gateway's HTTP endpoints.
type GatewayHandlers struct {
	GatewayService *service.GatewayService
}

// NewGatewayHandlers creates a new gateway handlers instance.
func NewGatewayHandlers(gatewayService *service.GatewayService) *GatewayHandlers {
	return &GatewayHandlers{
		GatewayService: gatewayService,
	}
}

// GetUserMeetings handles GET /user/{userId}/meetings.
func (h *GatewayHandlers) GetUserMeetings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	payload, err := h.GatewayService.GetUserMeetings(r.Context(), userID)
	if err != nil {
		writeErrorResponse(w, r, msgUserMeetingsFailed, err)
		return
	}

	writePayload(w, payload)
}

// GetMeetingParticipants handles GET /meeting/{meetingId}/participants.
func (h *GatewayHandlers) GetMeetingParticipants(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "meetingId")

	payload, err := h.GatewayService.GetMeetingParticipants(r.Context(), meetingID)
	if err != nil {
		writeErrorResponse(w, r, msgMeetingParticipantsFailed, err)
		return
	}

	writePayload(w, payload)
}

// GetMeetingDetails handles GET /meeting/{meetingId}/details.
func (h *GatewayHandlers) GetMeetingDetails(w http.ResponseWriter, r *http.Request) {
	meetingID := chi.URLParam(r, "meetingId")

	payload, err := h.GatewayService.GetMeetingDetails(r.Context(), meetingID)
	if err != nil {
		writeErrorResponse(w, r, msgMeetingDetailsFailed, err)
		return
	}

	writePayload(w, payload)
}

// NotFound handles requests for routes the gateway does not serve.
func (h *GatewayHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": msgRouteNotFound,
	})
}

// Livez handles GET /livez.
func (h *GatewayHandlers) Livez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Readyz handles GET /readyz.
func (h *GatewayHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if !h.GatewayService.ServiceReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Service Unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// writePayload writes the provider's JSON payload verbatim.
func writePayload(w http.ResponseWriter, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// writeErrorResponse logs the underlying failure and returns the
// endpoint's static 500 body. Token failures, provider errors, and bad
// identifiers all collapse to the same shape.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.ErrorContext(r.Context(), message, logging.ErrKey, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service implements the relay operations exposed by the
// gateway's HTTP handlers.
package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/metrics"
)

// GatewayService relays read queries to the meeting provider. Each
// operation is independent: the provider obtains a fresh access token
// per call, so concurrent requests share no mutable state.
type GatewayService struct {
	MeetingProvider domain.MeetingProvider
	Metrics         metrics.Collector
}

// NewGatewayService creates a new gateway service.
func NewGatewayService(provider domain.MeetingProvider, collector metrics.Collector) *GatewayService {
	if collector == nil {
		collector = metrics.NewNoopCollector()
	}
	return &GatewayService{
		MeetingProvider: provider,
		Metrics:         collector,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *GatewayService) ServiceReady() bool {
	return s.MeetingProvider != nil
}

// GetUserMeetings returns the provider's list of past meetings for a
// user. The userID may be a provider user ID or an email address.
func (s *GatewayService) GetUserMeetings(ctx context.Context, userID string) (json.RawMessage, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("gateway service not ready")
	}
	if userID == "" {
		return nil, domain.NewValidationError("user ID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("user_id", userID))

	payload, err := s.MeetingProvider.GetUserMeetings(ctx, userID)
	if err != nil {
		s.Metrics.RecordRelay(string(domain.ResourceUserMeetings), metrics.OutcomeFailure)
		slog.ErrorContext(ctx, "failed to get user meetings", logging.ErrKey, err)
		return nil, err
	}

	s.Metrics.RecordRelay(string(domain.ResourceUserMeetings), metrics.OutcomeSuccess)
	return payload, nil
}

// GetMeetingParticipants returns the provider's participant list for a
// meeting.
func (s *GatewayService) GetMeetingParticipants(ctx context.Context, meetingID string) (json.RawMessage, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("gateway service not ready")
	}
	if meetingID == "" {
		return nil, domain.NewValidationError("meeting ID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_id", meetingID))

	payload, err := s.MeetingProvider.GetMeetingParticipants(ctx, meetingID)
	if err != nil {
		s.Metrics.RecordRelay(string(domain.ResourceMeetingParticipants), metrics.OutcomeFailure)
		slog.ErrorContext(ctx, "failed to get meeting participants", logging.ErrKey, err)
		return nil, err
	}

	s.Metrics.RecordRelay(string(domain.ResourceMeetingParticipants), metrics.OutcomeSuccess)
	return payload, nil
}

// GetMeetingDetails returns the provider's details for a meeting.
func (s *GatewayService) GetMeetingDetails(ctx context.Context, meetingID string) (json.RawMessage, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("gateway service not ready")
	}
	if meetingID == "" {
		return nil, domain.NewValidationError("meeting ID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_id", meetingID))

	payload, err := s.MeetingProvider.GetMeeting(ctx, meetingID)
	if err != nil {
		s.Metrics.RecordRelay(string(domain.ResourceMeetingDetails), metrics.OutcomeFailure)
		slog.ErrorContext(ctx, "failed to get meeting details", logging.ErrKey, err)
		return nil, err
	}

	s.Metrics.RecordRelay(string(domain.ResourceMeetingDetails), metrics.OutcomeSuccess)
	return payload, nil
}

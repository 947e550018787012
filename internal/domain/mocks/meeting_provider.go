// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/domain"
)

// MockMeetingProvider is a mock implementation of the MeetingProvider port
type MockMeetingProvider struct {
	mock.Mock
}

// Ensure MockMeetingProvider implements MeetingProvider
var _ domain.MeetingProvider = (*MockMeetingProvider)(nil)

func (m *MockMeetingProvider) GetUserMeetings(ctx context.Context, userID string) (json.RawMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockMeetingProvider) GetMeetingParticipants(ctx context.Context, meetingID string) (json.RawMessage, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockMeetingProvider) GetMeeting(ctx context.Context, meetingID string) (json.RawMessage, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

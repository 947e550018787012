// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/domain/mocks"
)

// setupGatewayServiceForTesting creates a GatewayService with a mock provider for testing
func setupGatewayServiceForTesting() (*GatewayService, *mocks.MockMeetingProvider) {
	mockProvider := new(mocks.MockMeetingProvider)
	service := NewGatewayService(mockProvider, nil)
	return service, mockProvider
}

func TestGatewayService_ServiceReady(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *GatewayService
		expected bool
	}{
		{
			name: "service ready with provider",
			setup: func() *GatewayService {
				service, _ := setupGatewayServiceForTesting()
				return service
			},
			expected: true,
		},
		{
			name: "service not ready - missing provider",
			setup: func() *GatewayService {
				service, _ := setupGatewayServiceForTesting()
				service.MeetingProvider = nil
				return service
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := tt.setup()
			assert.Equal(t, tt.expected, service.ServiceReady())
		})
	}
}

func TestGatewayService_GetUserMeetings(t *testing.T) {
	payload := json.RawMessage(`{"meetings":[{"id":"m1","topic":"Standup","start_time":"2024-01-01T00:00:00Z"}]}`)

	tests := []struct {
		name          string
		userID        string
		setup         func(*mocks.MockMeetingProvider)
		expectedError bool
		expectedType  domain.ErrorType
	}{
		{
			name:   "successful relay returns provider payload unmodified",
			userID: "u1",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetUserMeetings", mock.Anything, "u1").Return(payload, nil)
			},
		},
		{
			name:          "empty user ID fails validation",
			userID:        "",
			setup:         func(m *mocks.MockMeetingProvider) {},
			expectedError: true,
			expectedType:  domain.ErrorTypeValidation,
		},
		{
			name:   "auth failure propagates",
			userID: "u1",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetUserMeetings", mock.Anything, "u1").
					Return(nil, domain.NewAuthError("failed to get Zoom access token"))
			},
			expectedError: true,
			expectedType:  domain.ErrorTypeAuth,
		},
		{
			name:   "upstream failure propagates",
			userID: "u1",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetUserMeetings", mock.Anything, "u1").
					Return(nil, domain.NewUpstreamError("zoom API returned error"))
			},
			expectedError: true,
			expectedType:  domain.ErrorTypeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockProvider := setupGatewayServiceForTesting()
			tt.setup(mockProvider)

			result, err := service.GetUserMeetings(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedType, domain.GetErrorType(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, payload, result)
			}
			mockProvider.AssertExpectations(t)
		})
	}
}

func TestGatewayService_GetMeetingParticipants(t *testing.T) {
	payload := json.RawMessage(`{"participants":[{"name":"Alice"},{"name":"Bob"}]}`)

	tests := []struct {
		name          string
		meetingID     string
		setup         func(*mocks.MockMeetingProvider)
		expectedError bool
		expectedType  domain.ErrorType
	}{
		{
			name:      "successful relay",
			meetingID: "m1",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetMeetingParticipants", mock.Anything, "m1").Return(payload, nil)
			},
		},
		{
			name:          "empty meeting ID fails validation",
			meetingID:     "",
			setup:         func(m *mocks.MockMeetingProvider) {},
			expectedError: true,
			expectedType:  domain.ErrorTypeValidation,
		},
		{
			name:      "provider failure propagates",
			meetingID: "m1",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetMeetingParticipants", mock.Anything, "m1").
					Return(nil, domain.NewUpstreamError("zoom API request failed"))
			},
			expectedError: true,
			expectedType:  domain.ErrorTypeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockProvider := setupGatewayServiceForTesting()
			tt.setup(mockProvider)

			result, err := service.GetMeetingParticipants(context.Background(), tt.meetingID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedType, domain.GetErrorType(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, payload, result)
			}
			mockProvider.AssertExpectations(t)
		})
	}
}

func TestGatewayService_GetMeetingDetails(t *testing.T) {
	payload := json.RawMessage(`{"id":123456789,"topic":"Weekly Sync","duration":60}`)

	tests := []struct {
		name          string
		meetingID     string
		setup         func(*mocks.MockMeetingProvider)
		expectedError bool
		expectedType  domain.ErrorType
	}{
		{
			name:      "successful relay",
			meetingID: "123456789",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetMeeting", mock.Anything, "123456789").Return(payload, nil)
			},
		},
		{
			name:          "empty meeting ID fails validation",
			meetingID:     "",
			setup:         func(m *mocks.MockMeetingProvider) {},
			expectedError: true,
			expectedType:  domain.ErrorTypeValidation,
		},
		{
			name:      "auth failure propagates",
			meetingID: "123456789",
			setup: func(m *mocks.MockMeetingProvider) {
				m.On("GetMeeting", mock.Anything, "123456789").
					Return(nil, domain.NewAuthError("failed to get Zoom access token"))
			},
			expectedError: true,
			expectedType:  domain.ErrorTypeAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockProvider := setupGatewayServiceForTesting()
			tt.setup(mockProvider)

			result, err := service.GetMeetingDetails(context.Background(), tt.meetingID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedType, domain.GetErrorType(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, payload, result)
			}
			mockProvider.AssertExpectations(t)
		})
	}
}

func TestGatewayService_NotReady(t *testing.T) {
	service := NewGatewayService(nil, nil)

	_, err := service.GetUserMeetings(context.Background(), "u1")
	assert.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	_, err = service.GetMeetingParticipants(context.Background(), "m1")
	assert.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	_, err = service.GetMeetingDetails(context.Background(), "m1")
	assert.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
}

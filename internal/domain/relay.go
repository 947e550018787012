// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"encoding/json"
)

// ResourceKind identifies which Zoom read query a relay operation targets.
type ResourceKind string

const (
	// ResourceUserMeetings is the list of a user's past meetings.
	ResourceUserMeetings ResourceKind = "user_meetings"
	// ResourceMeetingParticipants is the participant list of a meeting.
	ResourceMeetingParticipants ResourceKind = "meeting_participants"
	// ResourceMeetingDetails is the details of a single meeting.
	ResourceMeetingDetails ResourceKind = "meeting_details"
)

// MeetingProvider is the port to the video-conferencing provider's API.
// Payloads are opaque to the gateway: the provider's decoded JSON body
// is passed through without interpretation.
type MeetingProvider interface {
	GetUserMeetings(ctx context.Context, userID string) (json.RawMessage, error)
	GetMeetingParticipants(ctx context.Context, meetingID string) (json.RawMessage, error)
	GetMeeting(ctx context.Context, meetingID string) (json.RawMessage, error)
}

// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
)

// Meeting list type constants for the Zoom meetings API
const (
	MeetingListTypePast      = "past"
	MeetingListTypeScheduled = "scheduled"
	MeetingListTypeUpcoming  = "upcoming"
)

// GetUserMeetings retrieves the list of past meetings for a user.
// The userID may be a Zoom user ID or an email address.
// This is a pure API call with no business logic
func (c *Client) GetUserMeetings(ctx context.Context, userID string) (json.RawMessage, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "get_user_meetings"))

	path := fmt.Sprintf("/users/%s/meetings", url.PathEscape(userID))
	query := url.Values{"type": []string{MeetingListTypePast}}

	return c.doGet(ctx, path, query)
}

// GetMeeting retrieves the details of a single meeting.
// This is a pure API call with no business logic
func (c *Client) GetMeeting(ctx context.Context, meetingID string) (json.RawMessage, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "get_meeting"))

	path := fmt.Sprintf("/meetings/%s", url.PathEscape(meetingID))

	return c.doGet(ctx, path, nil)
}

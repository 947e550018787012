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

// GetMeetingParticipants retrieves the participant list of a meeting
// from the Zoom dashboard metrics API.
// This is a pure API call with no business logic
func (c *Client) GetMeetingParticipants(ctx context.Context, meetingID string) (json.RawMessage, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "get_meeting_participants"))

	path := fmt.Sprintf("/metrics/meetings/%s/participants", url.PathEscape(meetingID))

	return c.doGet(ctx, path, nil)
}

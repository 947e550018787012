// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package api implements the Zoom REST API client used by the gateway.
// It exchanges the configured server-to-server OAuth credentials for a
// short-lived access token and relays read queries to the Zoom API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/metrics"
)

// ClientAPI defines the interface for Zoom API operations
// This allows for easy mocking and testing of the Zoom client
type ClientAPI interface {
	GetUserMeetings(ctx context.Context, userID string) (json.RawMessage, error)
	GetMeetingParticipants(ctx context.Context, meetingID string) (json.RawMessage, error)
	GetMeeting(ctx context.Context, meetingID string) (json.RawMessage, error)
}

const (
	// BaseURL is the base URL for Zoom API
	BaseURL = "https://api.zoom.us/v2"
	// AuthURL is the OAuth token endpoint
	AuthURL = "https://zoom.us/oauth/token"
	// DefaultClientTimeout is the default HTTP client timeout for Zoom API requests
	DefaultClientTimeout = 30 * time.Second
)

// Client represents a Zoom API client
type Client struct {
	httpClient  *http.Client
	config      Config
	oauthConfig *clientcredentials.Config
	metrics     metrics.Collector
}

// Config holds the configuration for the Zoom client
type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override auth URL for testing
	AuthURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
	// Optional: metrics collector for provider call instrumentation
	Metrics metrics.Collector
}

// Ensure that Client implements ClientAPI and the domain port
var (
	_ ClientAPI              = (*Client)(nil)
	_ domain.MeetingProvider = (*Client)(nil)
)

// NewClient creates a new Zoom API client
func NewClient(config Config) *Client {
	// Set defaults if not provided
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.AuthURL == "" {
		config.AuthURL = AuthURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNoopCollector()
	}

	// Zoom Server-to-Server OAuth: the token request authenticates with
	// HTTP Basic (base64 of client_id:client_secret) and carries the
	// account_credentials grant plus the account ID in the form body.
	oauthConfig := &clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.AuthURL,
		EndpointParams: url.Values{
			"grant_type": []string{"account_credentials"},
			"account_id": []string{config.AccountID},
		},
		AuthStyle: oauth2.AuthStyleInHeader,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config:      config,
		oauthConfig: oauthConfig,
		metrics:     config.Metrics,
	}
}

// FetchToken exchanges the configured credentials for a short-lived
// access token. A fresh token is requested on every call; tokens are
// never cached across relay operations.
func (c *Client) FetchToken(ctx context.Context) (string, error) {
	// Route the token request through the client's HTTP client so the
	// configured timeout applies to the exchange as well.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauthConfig.TokenSource(ctx).Token()
	if err != nil {
		c.metrics.RecordTokenExchange(metrics.OutcomeFailure)
		slog.ErrorContext(ctx, "Zoom token exchange failed", logging.ErrKey, err)
		return "", domain.NewAuthError("failed to get Zoom access token", err)
	}
	if token.AccessToken == "" {
		c.metrics.RecordTokenExchange(metrics.OutcomeFailure)
		return "", domain.NewAuthError("token endpoint returned an empty access token")
	}

	c.metrics.RecordTokenExchange(metrics.OutcomeSuccess)
	return token.AccessToken, nil
}

// doGet performs a bearer-authenticated GET against the Zoom API and
// returns the decoded JSON body untouched. Every call begins with a
// token exchange; a token failure aborts before the resource request
// is made.
func (c *Client) doGet(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	token, err := c.FetchToken(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.config.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to create Zoom API request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	slog.DebugContext(ctx, "making Zoom API request", "method", http.MethodGet, "path", path)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "Zoom API request failed",
			"method", http.MethodGet,
			"path", path,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, domain.NewUpstreamError("zoom API request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.metrics.RecordProviderLatency(duration)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to read Zoom API response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseErrorResponse(body)
		slog.ErrorContext(ctx, "Zoom API returned error",
			"method", http.MethodGet,
			"path", path,
			"status", resp.StatusCode,
			"duration", duration.String(),
			logging.ErrKey, apiErr)
		return nil, domain.NewUpstreamError("zoom API returned error", apiErr)
	}

	slog.InfoContext(ctx, "Zoom API request completed",
		"method", http.MethodGet,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration.String())

	if !json.Valid(body) {
		return nil, domain.NewUpstreamError("zoom API returned a malformed JSON body")
	}

	return json.RawMessage(body), nil
}

// parseErrorResponse attempts to parse a Zoom API error response
func parseErrorResponse(body []byte) error {
	var errResp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("zoom API error (code %d): %s", errResp.Code, errResp.Message)
	}
	return fmt.Errorf("zoom API error: %s", string(body))
}

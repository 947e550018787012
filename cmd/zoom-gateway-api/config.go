// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"net/url"
	"os"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
)

// flags are the command line flags for the gateway service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the gateway service.
type environment struct {
	Port string
	Zoom zoomConfig
}

// zoomConfig holds the Zoom server-to-server OAuth configuration.
// The credential triple is read once at startup and never logged.
type zoomConfig struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	BaseURL      string
	AuthURL      string
}

// parseFlags parses command line flags for the gateway service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the gateway service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return environment{
		Port: port,
		Zoom: parseZoomConfig(),
	}
}

// parseZoomConfig parses the Zoom credential configuration from
// environment variables. Missing credentials are reported but do not
// abort startup: every relay call will then fail the token exchange at
// the provider rather than at local validation time.
func parseZoomConfig() zoomConfig {
	config := zoomConfig{
		AccountID:    os.Getenv("ZOOM_ACCOUNT_ID"),
		ClientID:     os.Getenv("ZOOM_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOOM_CLIENT_SECRET"),
		BaseURL:      os.Getenv("ZOOM_API_BASE_URL"),
		AuthURL:      os.Getenv("ZOOM_OAUTH_URL"),
	}

	if config.AccountID == "" || config.ClientID == "" || config.ClientSecret == "" {
		slog.Warn("Zoom credentials are not fully configured; relay calls will fail at the provider",
			"has_account_id", config.AccountID != "",
			"has_client_id", config.ClientID != "",
			"has_client_secret", config.ClientSecret != "",
		)
	}

	if config.BaseURL != "" {
		if _, err := url.Parse(config.BaseURL); err != nil {
			slog.With(logging.ErrKey, err, "url", config.BaseURL).Error("invalid ZOOM_API_BASE_URL provided, using default")
			config.BaseURL = ""
		}
	}
	if config.AuthURL != "" {
		if _, err := url.Parse(config.AuthURL); err != nil {
			slog.With(logging.ErrKey, err, "url", config.AuthURL).Error("invalid ZOOM_OAUTH_URL provided, using default")
			config.AuthURL = ""
		}
	}

	return config
}

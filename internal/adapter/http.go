package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-lab-manager/internal/config"
	"github.com/MKhiriev/go-lab-manager/internal/logger"
	"github.com/MKhiriev/go-lab-manager/internal/utils"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDPrefix = "lab-"
)

type httpServerAdapter struct {
	client      *utils.HTTPClient
	configsPath string
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	configsPath := adapterCfg.ConfigsPath
	if configsPath == "" {
		configsPath = config.DefaultConfigsPath
	}

	return &httpServerAdapter{
		client:      client,
		configsPath: configsPath,
		ids:         utils.NewUUIDGenerator(requestIDPrefix),
		logger:      logger.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchConfigs implements [ServerAdapter]. It sends GET <configs path> and
// returns the response body. Each request carries a fresh X-Request-ID.
func (h *httpServerAdapter) FetchConfigs(ctx context.Context) (string, error) {
	requestID := h.ids.Generate()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/xml, text/xml").
		SetHeader(requestIDHeader, requestID).
		Get(h.configsPath)
	if err != nil {
		h.logger.Err(err).Str("request_id", requestID).Msg("fetch configs request failed")
		return "", fmt.Errorf("fetch configs request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Msg("fetch configs rejected by backend")
		return "", err
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("bytes", len(resp.Body())).
		Dur("took", resp.Time()).
		Msg("fetched configs")

	return resp.String(), nil
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

const syncPath = "/api/sync/{userID}"

type httpSyncSource struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPSyncSource constructs an HTTP/REST implementation of [SyncSource].
// It normalises and validates cfg.SourceURL and configures the underlying
// HTTP client with the resolved base URL and request timeout. When cfg.Token
// is set it is sent as a bearer token on every request.
//
// Returns an error wrapping [ErrInvalidAddress] if cfg.SourceURL is empty or
// cannot be parsed as a valid URL.
func NewHTTPSyncSource(cfg config.Sync, logger *logger.Logger) (SyncSource, error) {
	baseURL, err := normalizeBaseURL(cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpSyncSource{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
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

// Fetch implements [SyncSource]. It sends GET /api/sync/{userID} and decodes
// the JSON body into [models.SyncData]. Non-2xx responses are mapped to the
// sentinel errors of this package.
func (h *httpSyncSource) Fetch(ctx context.Context, userID string) (models.SyncData, error) {
	if userID == "" {
		return models.SyncData{}, ErrEmptyUserID
	}

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Get(syncPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpSyncSource.Fetch").Str("user_id", userID).Msg("sync request failed")
		return models.SyncData{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpSyncSource.Fetch").Str("user_id", userID).Int("status", resp.StatusCode()).Msg("sync source rejected request")
		return models.SyncData{}, err
	}

	var data models.SyncData
	if err = json.Unmarshal(resp.Body(), &data); err != nil {
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	h.logger.Debug().Str("func", "httpSyncSource.Fetch").Str("user_id", userID).Msg("fetched sync data")
	return data, nil
}

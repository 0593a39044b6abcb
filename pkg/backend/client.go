/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package backend is the HTTP client for the charging platform REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/version"
)

const (
	headerRequestID = "X-Request-Id"
	maxErrorBody    = 4096
)

// TokenSource supplies the bearer token of the current operator, or "".
type TokenSource interface {
	Token() string
}

// Config controls how the client behaves. HTTP defaults to a client without
// a timeout; requests end only when their context does.
type Config struct {
	BaseURL string
	Tokens  TokenSource
	HTTP    *http.Client
	Logger  logger.Logger
}

// Client talks to the backend on behalf of the console.
type Client struct {
	baseURL *url.URL
	tokens  TokenSource
	client  *http.Client
	logger  logger.Logger
}

// New constructs a client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errBaseURLRequired
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Client{
		baseURL: parsed,
		tokens:  cfg.Tokens,
		client:  httpClient,
		logger:  log,
	}, nil
}

// ListChargers returns GET /api/chargers.
func (c *Client) ListChargers(ctx context.Context) ([]models.ChargerRecord, error) {
	var out []models.ChargerRecord

	if err := c.do(ctx, http.MethodGet, "/api/chargers", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListSessions returns GET /api/sessions, narrowed to one charger when
// chargePointID is set.
func (c *Client) ListSessions(ctx context.Context, chargePointID string) ([]models.ChargingSession, error) {
	var query url.Values
	if chargePointID != "" {
		query = url.Values{"charge_point_id": {chargePointID}}
	}

	var out []models.ChargingSession

	if err := c.do(ctx, http.MethodGet, "/api/sessions", query, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListFaults returns GET /api/faults. Cleared faults are left out unless
// includeCleared is set.
func (c *Client) ListFaults(ctx context.Context, includeCleared bool) ([]models.Fault, error) {
	var query url.Values
	if !includeCleared {
		query = url.Values{"cleared": {"false"}}
	}

	var out []models.Fault

	if err := c.do(ctx, http.MethodGet, "/api/faults", query, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// LatestMeterValue returns GET /api/metering/{id}/latest.
func (c *Client) LatestMeterValue(ctx context.Context, chargePointID string) (*models.MeterValue, error) {
	if chargePointID == "" {
		return nil, errEmptyChargerID
	}

	var out models.MeterValue

	if err := c.do(ctx, http.MethodGet, "/api/metering/"+url.PathEscape(chargePointID)+"/latest", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeviceInfo returns GET /api/device/{id}.
func (c *Client) DeviceInfo(ctx context.Context, chargePointID string) (*models.DeviceInfo, error) {
	if chargePointID == "" {
		return nil, errEmptyChargerID
	}

	var out models.DeviceInfo

	if err := c.do(ctx, http.MethodGet, "/api/device/"+url.PathEscape(chargePointID), nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetConfiguration returns GET /api/chargers/{id}/configuration, optionally
// limited to keys.
func (c *Client) GetConfiguration(ctx context.Context, chargePointID string, keys ...string) (*models.ConfigurationResponse, error) {
	if chargePointID == "" {
		return nil, errEmptyChargerID
	}

	var query url.Values
	if len(keys) > 0 {
		query = url.Values{"keys": {strings.Join(keys, ",")}}
	}

	var out models.ConfigurationResponse

	p := "/api/chargers/" + url.PathEscape(chargePointID) + "/configuration"
	if err := c.do(ctx, http.MethodGet, p, query, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ChangeConfiguration posts one key change to the charger.
func (c *Client) ChangeConfiguration(ctx context.Context, chargePointID, key, value string) (*models.ActionResult, error) {
	if chargePointID == "" {
		return nil, errEmptyChargerID
	}

	var out models.ActionResult

	p := "/api/chargers/" + url.PathEscape(chargePointID) + "/configuration/change"
	body := models.ChangeConfigurationRequest{Key: key, Value: value}

	if err := c.do(ctx, http.MethodPost, p, nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// StartCharging posts a remote start.
func (c *Client) StartCharging(ctx context.Context, req *models.StartChargingRequest) (*models.ActionResult, error) {
	var out models.ActionResult

	if err := c.do(ctx, http.MethodPost, "/api/charging/start", nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// StopCharging posts a remote stop.
func (c *Client) StopCharging(ctx context.Context, req *models.StopChargingRequest) (*models.ActionResult, error) {
	var out models.ActionResult

	if err := c.do(ctx, http.MethodPost, "/api/charging/stop", nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Login posts staff credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*models.StaffLoginResponse, error) {
	var out models.StaffLoginResponse

	body := models.StaffLoginRequest{Email: email, Password: password}

	if err := c.do(ctx, http.MethodPost, "/api/staff/login", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout tells the backend to revoke token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/staff/logout", nil, models.LogoutRequest{Token: token}, nil)
}

func (c *Client) do(ctx context.Context, method, p string, query url.Values, body, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	endpoint.RawQuery = query.Encode()

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", p, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", p, err)
	}

	requestID := uuid.NewString()

	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, p, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		c.logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", p).
			Int("status", resp.StatusCode).
			Msg("Backend returned an error status")

		return &StatusError{Method: method, Path: p, Code: resp.StatusCode, Message: ServerMessage(resp.StatusCode, raw)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", p, err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", p).
		Msg("Backend request completed")

	return nil
}

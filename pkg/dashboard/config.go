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

package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	// Display zones must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"

	"github.com/carverauto/chargeradar/pkg/access"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/poller"
	"github.com/carverauto/chargeradar/pkg/reconcile"
	"github.com/carverauto/chargeradar/pkg/telemetry"
)

const (
	DefaultAPIBaseURL      = "http://localhost:8000"
	DefaultDisplayTimezone = "Asia/Kuala_Lumpur"
	DefaultPollInterval    = 2 * time.Second

	appDirName      = "chargeradar"
	sessionFileName = "session.json"
	logFileName     = "dashboard.log"
)

var (
	errInvalidBaseURL     = errors.New("api_base_url must be an absolute http(s) URL")
	errInvalidTimezone    = errors.New("invalid display_timezone")
	errNegativeInterval   = errors.New("poll_interval must not be negative")
	errNegativeFreshness  = errors.New("heartbeat_freshness must not be negative")
	errNoSessionDirectory = errors.New("session_file is required when no user config directory is available")
)

// Config is the dashboard configuration file.
type Config struct {
	APIBaseURL           string            `json:"api_base_url"`
	PollInterval         models.Duration   `json:"poll_interval"`
	HeartbeatFreshness   models.Duration   `json:"heartbeat_freshness"`
	SessionFile          string            `json:"session_file"`
	StartPath            string            `json:"start_path"`
	DisplayTimezone      string            `json:"display_timezone"`
	IncludeClearedFaults bool              `json:"include_cleared_faults"`
	ChargePointID        string            `json:"charge_point_id,omitempty"`
	Logging              *logger.Config    `json:"logging,omitempty"`
	Metrics              *telemetry.Config `json:"metrics,omitempty"`

	location *time.Location
}

// DefaultConfig returns a validated configuration with every default applied.
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate implements config.Validator and fills in defaults.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidBaseURL, c.APIBaseURL)
	}

	if c.PollInterval < 0 {
		return errNegativeInterval
	}

	if c.PollInterval == 0 {
		c.PollInterval = models.Duration(DefaultPollInterval)
	}

	if c.HeartbeatFreshness < 0 {
		return errNegativeFreshness
	}

	if c.HeartbeatFreshness == 0 {
		c.HeartbeatFreshness = models.Duration(reconcile.DefaultFreshnessWindow)
	}

	if c.DisplayTimezone == "" {
		c.DisplayTimezone = DefaultDisplayTimezone
	}

	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidTimezone, c.DisplayTimezone, err)
	}

	c.location = loc
	c.StartPath = access.CleanPath(c.StartPath)

	if err := c.applyFileDefaults(); err != nil {
		return err
	}

	return nil
}

// The TUI owns stdout, so logs default to a file next to the session file.
func (c *Config) applyFileDefaults() error {
	dir := ""

	if c.SessionFile == "" || c.needsLogFile() {
		base, err := os.UserConfigDir()
		if err != nil {
			if c.SessionFile == "" {
				return fmt.Errorf("%w: %w", errNoSessionDirectory, err)
			}

			base = filepath.Dir(c.SessionFile)
		} else {
			base = filepath.Join(base, appDirName)
		}

		dir = base
	}

	if c.SessionFile == "" {
		c.SessionFile = filepath.Join(dir, sessionFileName)
	}

	if c.Logging == nil {
		c.Logging = &logger.Config{Level: "info"}
	}

	if c.needsLogFile() {
		c.Logging.Output = logger.OutputFile
		c.Logging.FilePath = filepath.Join(dir, logFileName)
	}

	return nil
}

func (c *Config) needsLogFile() bool {
	if c.Logging == nil {
		return true
	}

	return c.Logging.Output == "" || (c.Logging.Output == logger.OutputFile && c.Logging.FilePath == "")
}

// Location is the display timezone. It is UTC before Validate has run.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}

	return c.location
}

// PollerConfig derives the scheduler configuration.
func (c *Config) PollerConfig() *poller.Config {
	return &poller.Config{
		PollInterval:       c.PollInterval,
		HeartbeatFreshness: c.HeartbeatFreshness,
		Filter: poller.Filter{
			ChargePointID:        c.ChargePointID,
			IncludeClearedFaults: c.IncludeClearedFaults,
		},
	}
}

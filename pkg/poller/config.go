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

package poller

import (
	"fmt"
	"time"

	"github.com/carverauto/chargeradar/pkg/models"
)

var (
	errNegativeInterval  = fmt.Errorf("poll interval must not be negative")
	errNegativeFreshness = fmt.Errorf("heartbeat freshness must not be negative")
)

const (
	defaultPollInterval = 2 * time.Second
)

// Filter narrows the session and fault collections fetched every cycle.
type Filter struct {
	ChargePointID        string `json:"charge_point_id,omitempty"`
	IncludeClearedFaults bool   `json:"include_cleared_faults"`
}

// Config represents scheduler configuration.
type Config struct {
	PollInterval       models.Duration `json:"poll_interval"`
	HeartbeatFreshness models.Duration `json:"heartbeat_freshness"`
	Filter             Filter          `json:"filter"`
}

// Validate implements config.Validator interface.
func (c *Config) Validate() error {
	if c.PollInterval < 0 {
		return errNegativeInterval
	}

	if c.HeartbeatFreshness < 0 {
		return errNegativeFreshness
	}

	if time.Duration(c.PollInterval) == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	return nil
}

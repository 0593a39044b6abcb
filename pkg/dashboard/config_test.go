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
	"path/filepath"
	"testing"
	"time"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultPollInterval, time.Duration(cfg.PollInterval))
	assert.Equal(t, 15*time.Minute, time.Duration(cfg.HeartbeatFreshness))
	assert.Equal(t, DefaultDisplayTimezone, cfg.DisplayTimezone)
	assert.Equal(t, DefaultDisplayTimezone, cfg.Location().String())
	assert.Equal(t, "/", cfg.StartPath)
	assert.Equal(t, sessionFileName, filepath.Base(cfg.SessionFile))
	assert.Equal(t, appDirName, filepath.Base(filepath.Dir(cfg.SessionFile)))

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, logger.OutputFile, cfg.Logging.Output)
	assert.Equal(t, filepath.Join(filepath.Dir(cfg.SessionFile), logFileName), cfg.Logging.FilePath)
}

func TestConfigKeepsExplicitValues(t *testing.T) {
	session := filepath.Join(t.TempDir(), "s.json")

	cfg := &Config{
		APIBaseURL:         "https://ops.example.com/",
		PollInterval:       models.Duration(5 * time.Second),
		HeartbeatFreshness: models.Duration(time.Minute),
		SessionFile:        session,
		StartPath:          "/admin/",
		DisplayTimezone:    "UTC",
		Logging:            &logger.Config{Level: "debug", Output: logger.OutputStderr},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, session, cfg.SessionFile)
	assert.Equal(t, "/admin", cfg.StartPath)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, logger.OutputStderr, cfg.Logging.Output)
	assert.Empty(t, cfg.Logging.FilePath)
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	session := filepath.Join(t.TempDir(), "s.json")

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "relative url", cfg: Config{APIBaseURL: "localhost:8000", SessionFile: session}, want: errInvalidBaseURL},
		{name: "ftp url", cfg: Config{APIBaseURL: "ftp://host", SessionFile: session}, want: errInvalidBaseURL},
		{name: "negative interval", cfg: Config{PollInterval: -1, SessionFile: session}, want: errNegativeInterval},
		{name: "negative freshness", cfg: Config{HeartbeatFreshness: -1, SessionFile: session}, want: errNegativeFreshness},
		{name: "unknown zone", cfg: Config{DisplayTimezone: "Mars/Olympus", SessionFile: session}, want: errInvalidTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigPollerConfig(t *testing.T) {
	cfg := &Config{
		PollInterval:         models.Duration(3 * time.Second),
		HeartbeatFreshness:   models.Duration(time.Minute),
		IncludeClearedFaults: true,
		ChargePointID:        "CP-1",
	}

	pc := cfg.PollerConfig()
	assert.Equal(t, 3*time.Second, time.Duration(pc.PollInterval))
	assert.Equal(t, time.Minute, time.Duration(pc.HeartbeatFreshness))
	assert.Equal(t, "CP-1", pc.Filter.ChargePointID)
	assert.True(t, pc.Filter.IncludeClearedFaults)
}

func TestConfigLocationBeforeValidate(t *testing.T) {
	assert.Equal(t, time.UTC, (&Config{}).Location())
}

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

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestInvalid = errors.New("api_base_url is required")

type testLogging struct {
	Level  string `json:"level"`
	Output string `json:"output"`
}

type testConfig struct {
	APIBaseURL   string          `json:"api_base_url"`
	PollInterval models.Duration `json:"poll_interval"`
	Timeout      time.Duration   `json:"timeout"`
	Verbose      bool            `json:"verbose"`
	Retries      int             `json:"retries"`
	Tags         []string        `json:"tags,omitempty"`
	Logging      *testLogging    `json:"logging,omitempty"`
	Internal     string          `json:"-"`
}

func (c *testConfig) Validate() error {
	if c.APIBaseURL == "" {
		return errTestInvalid
	}

	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dashboard.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

func TestLoadAndValidateFromFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfig(t, `{
		"api_base_url": "http://localhost:8000",
		"poll_interval": "5s",
		"logging": {"level": "debug", "output": "file"}
	}`)

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.PollInterval))
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadAndValidateRunsValidator(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	path := writeConfig(t, `{"poll_interval": "5s"}`)

	var cfg testConfig
	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg)
	assert.ErrorIs(t, err, errTestInvalid)
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAndValidateRejectsMalformedJSON(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfig(t, `{"api_base_url": `)

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	assert.ErrorContains(t, err, "failed to unmarshal JSON")
}

func TestLoadAndValidateRejectsUnknownSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), "unused.json", &cfg)
	assert.ErrorIs(t, err, errInvalidConfigSource)
}

func TestLoadAndValidateRequiresPointer(t *testing.T) {
	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), "unused.json", cfg)
	assert.ErrorIs(t, err, errInvalidConfigPtr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "")
	t.Setenv("CHARGERADAR_CONFIG_JSON", "")
	t.Setenv("CHARGERADAR_API_BASE_URL", "http://backend:8000")
	t.Setenv("CHARGERADAR_POLL_INTERVAL", "3s")
	t.Setenv("CHARGERADAR_TIMEOUT", "1m")
	t.Setenv("CHARGERADAR_VERBOSE", "true")
	t.Setenv("CHARGERADAR_RETRIES", "4")
	t.Setenv("CHARGERADAR_TAGS", "north, south")
	t.Setenv("CHARGERADAR_LOGGING_LEVEL", "warn")

	var cfg testConfig
	err := NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Retries)
	assert.Equal(t, []string{"north", "south"}, cfg.Tags)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromEnvironmentLeavesUnsetPointersNil(t *testing.T) {
	t.Setenv("TEST_API_BASE_URL", "http://backend:8000")

	var cfg testConfig
	err := NewEnvConfigLoader(nil, "TEST_").Load(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Nil(t, cfg.Logging)
	assert.Empty(t, cfg.Internal)
}

func TestLoadFromEnvironmentSkipsInvalidValues(t *testing.T) {
	t.Setenv("TEST_API_BASE_URL", "http://backend:8000")
	t.Setenv("TEST_RETRIES", "many")
	t.Setenv("TEST_POLL_INTERVAL", "soon")

	cfg := testConfig{Retries: 2}
	err := NewEnvConfigLoader(logger.NewTestLogger(), "TEST_").Load(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Retries)
	assert.Zero(t, cfg.PollInterval)
	assert.Equal(t, "http://backend:8000", cfg.APIBaseURL)
}

func TestLoadFromEnvironmentNumericDuration(t *testing.T) {
	t.Setenv("TEST_POLL_INTERVAL", "2000000000")

	var cfg testConfig
	err := NewEnvConfigLoader(nil, "TEST_").Load(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, time.Duration(cfg.PollInterval))
}

func TestLoadFromConfigJSON(t *testing.T) {
	t.Setenv("TEST_CONFIG_JSON", `{"api_base_url": "http://json:8000", "poll_interval": "4s"}`)
	t.Setenv("TEST_API_BASE_URL", "http://ignored:8000")

	var cfg testConfig
	err := NewEnvConfigLoader(nil, "TEST_").Load(context.Background(), "", &cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://json:8000", cfg.APIBaseURL)
	assert.Equal(t, 4*time.Second, time.Duration(cfg.PollInterval))
}

func TestEnvLoaderRejectsNonStruct(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "TEST_")

	var s string
	assert.ErrorIs(t, loader.Load(context.Background(), "", &s), ErrDstMustBePointerToStruct)
	assert.ErrorIs(t, loader.Load(context.Background(), "", nil), ErrDstMustBeNonNilPointer)
}

func TestValidateConfigIgnoresNonValidators(t *testing.T) {
	assert.NoError(t, ValidateConfig(&struct{}{}))
	assert.ErrorIs(t, ValidateConfig(&testConfig{}), errTestInvalid)
}

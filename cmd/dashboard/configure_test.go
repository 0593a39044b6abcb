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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/carverauto/chargeradar/pkg/access"
	"github.com/carverauto/chargeradar/pkg/actions"
	"github.com/carverauto/chargeradar/pkg/backend"
	"github.com/carverauto/chargeradar/pkg/guard"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/session"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*app
	hits   *atomic.Int32
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T, role models.Role) *testApp {
	t.Helper()

	var hits atomic.Int32

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			next.ServeHTTP(w, r)
		})
	})
	router.HandleFunc("/api/device/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.DeviceInfo{ChargePointID: mux.Vars(r)["id"], Vendor: "ABB"})
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/chargers/{id}/configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ConfigurationResponse{Success: true})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	log := logger.NewTestLogger()
	sess := session.New(session.NewMemoryStore())
	require.NoError(t, sess.Save("tok", &models.StaffInfo{Name: "Sam", Role: role, Department: models.DepartmentOperations}))

	client, err := backend.New(backend.Config{BaseURL: server.URL, Tokens: sess, Logger: log})
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer

	return &testApp{
		app: &app{
			logger:  log,
			session: sess,
			client:  client,
			guard:   guard.New(sess, access.NewPolicy(), client, log),
			stdout:  &stdout,
			stderr:  &stderr,
		},
		hits:   &hits,
		stdout: &stdout,
		stderr: &stderr,
	}
}

func TestSubcommandsDeniedWithoutBackendCalls(t *testing.T) {
	for _, role := range []models.Role{models.RoleStaff, models.RoleManager} {
		t.Run(string(role), func(t *testing.T) {
			a := newTestApp(t, role)

			err := a.configuration(t.Context(), []string{"get", "CP1"})
			require.ErrorIs(t, err, guard.ErrAccessDenied)

			err = a.configuration(t.Context(), []string{"set", "CP1", "LogoLight=on"})
			require.ErrorIs(t, err, guard.ErrAccessDenied)

			err = a.device(t.Context(), []string{"CP1"})
			require.ErrorIs(t, err, guard.ErrAccessDenied)

			assert.Equal(t, int32(0), a.hits.Load())
			assert.Empty(t, a.stdout.String())
			assert.Contains(t, a.stderr.String(), "redirecting to /")
		})
	}
}

func TestSubcommandsRequireLogin(t *testing.T) {
	a := newTestApp(t, models.RoleAdmin)
	require.NoError(t, a.session.Clear())

	err := a.device(t.Context(), []string{"CP1"})
	require.ErrorIs(t, err, errLoginRequired)
	assert.Equal(t, int32(0), a.hits.Load())
}

func TestAdminSubcommandsReachBackend(t *testing.T) {
	a := newTestApp(t, models.RoleAdmin)

	require.NoError(t, a.device(t.Context(), []string{"CP1"}))
	assert.Regexp(t, `Vendor\s+ABB`, a.stdout.String())

	require.NoError(t, a.configuration(t.Context(), []string{"get", "CP1"}))
	assert.Equal(t, int32(2), a.hits.Load())
}

func TestDashboardActivationFallsBackHome(t *testing.T) {
	a := newTestApp(t, models.RoleStaff)

	page, err := a.activate(access.RouteSettings)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, access.RouteHome, page.Path)
	assert.False(t, page.Capability.Editable)
}

func TestParseSettings(t *testing.T) {
	got, err := parseSettings([]string{"UserPass=1234", " LogoLight =on", "StatusLight="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"UserPass": "1234", "LogoLight": "on", "StatusLight": ""}, got)

	_, err = parseSettings([]string{"LogoLight"})
	assert.ErrorIs(t, err, errBadSetting)

	_, err = parseSettings([]string{"=on"})
	assert.ErrorIs(t, err, errBadSetting)
}

func TestPrintConfiguration(t *testing.T) {
	value := "on"
	readonly := false

	var out bytes.Buffer
	err := printConfiguration(&out, &models.ConfigurationResponse{
		Success: true,
		Configuration: []models.ConfigurationKey{
			{Key: "LogoLight", Value: &value, Readonly: &readonly},
			{Key: "HeartbeatInterval"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "KEY")
	assert.Regexp(t, `LogoLight\s+on\s+false`, out.String())
	assert.Regexp(t, `HeartbeatInterval\s+-`, out.String())
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, &actions.SettingsReport{
		Applied: []string{"UserPass"},
		Failed:  []actions.SettingFailure{{Key: "LogoLight", Err: errors.New("rejected")}},
	})

	assert.Equal(t, "applied  UserPass\nfailed   LogoLight: rejected\n", out.String())
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig(t.Context(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.APIBaseURL)
	assert.NotEmpty(t, cfg.SessionFile)
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := run([]string{"frobnicate"})
	assert.ErrorIs(t, err, errUnknownCommand)
}

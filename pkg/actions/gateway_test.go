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

package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/chargeradar/pkg/backend"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/viewmode"
)

//nolint:gochecknoglobals // test fixtures
var (
	editable = viewmode.Capability{Editable: true}
	viewOnly = viewmode.Capability{}
)

type fixture struct {
	backend   *MockBackend
	refresher *MockRefresher
	sessions  *MockSessionSource
	gateway   *Gateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		backend:   NewMockBackend(ctrl),
		refresher: NewMockRefresher(ctrl),
		sessions:  NewMockSessionSource(ctrl),
	}
	f.gateway = New(f.backend, f.refresher, f.sessions, logger.NewTestLogger())

	return f
}

func startable(id string) *models.ChargerView {
	return &models.ChargerView{
		Record: models.ChargerRecord{ChargePointID: id, Status: models.StatusOnline, Availability: models.AvailabilityAvailable},
		State:  models.ChargerState{CanStart: true},
	}
}

func stoppable(id string, tx *int64) *models.ChargerView {
	return &models.ChargerView{
		Record: models.ChargerRecord{ChargePointID: id, Status: models.StatusOnline, ActiveTransactionID: tx},
		State:  models.ChargerState{CanStop: true, HasActiveSession: tx != nil},
	}
}

func TestGatesMakeNoNetworkCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.gateway.StartCharging(ctx, viewOnly, startable("CP-1"))
	require.ErrorIs(t, err, ErrNotEditable)

	_, err = f.gateway.StartCharging(ctx, editable, stoppable("CP-1", nil))
	require.ErrorIs(t, err, ErrActionNotPermitted)

	_, err = f.gateway.StopCharging(ctx, viewOnly, stoppable("CP-1", nil))
	require.ErrorIs(t, err, ErrNotEditable)

	_, err = f.gateway.StopCharging(ctx, editable, startable("CP-1"))
	require.ErrorIs(t, err, ErrActionNotPermitted)

	_, err = f.gateway.ChangeConfiguration(ctx, viewOnly, "CP-1", "HeartbeatInterval", "30")
	require.ErrorIs(t, err, ErrNotEditable)

	_, err = f.gateway.ApplySettings(ctx, viewOnly, "CP-1", map[string]string{SettingStatusLight: "on"})
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestStartChargingSuccess(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().StartCharging(gomock.Any(), &models.StartChargingRequest{
		ChargerID: "CP-1", ConnectorID: 1, IDTag: "DASHBOARD_USER",
	}).Return(&models.ActionResult{Success: true, Message: "RemoteStart accepted"}, nil)
	f.refresher.EXPECT().Refresh().Times(1)

	res, err := f.gateway.StartCharging(context.Background(), editable, startable("CP-1"))
	require.NoError(t, err)
	assert.Equal(t, "RemoteStart accepted", res.Message)
}

func TestStartChargingFailureRefreshesOnceWithoutRetry(t *testing.T) {
	f := newFixture(t)

	statusErr := &backend.StatusError{Method: "POST", Path: "/api/charging/start", Code: 400, Message: "Charger offline"}

	f.backend.EXPECT().StartCharging(gomock.Any(), gomock.Any()).Return(nil, statusErr).Times(1)
	f.refresher.EXPECT().Refresh().Times(1)

	_, err := f.gateway.StartCharging(context.Background(), editable, startable("CP-1"))

	var ae *ActionError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Charger offline", ae.Message)
	assert.Equal(t, "CP-1", ae.ChargePointID)
	assert.ErrorIs(t, err, backend.ErrUnexpectedStatus)
}

func TestStartChargingRejectedBody(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().StartCharging(gomock.Any(), gomock.Any()).Return(&models.ActionResult{Success: false}, nil)
	f.refresher.EXPECT().Refresh()

	_, err := f.gateway.StartCharging(context.Background(), editable, startable("CP-1"))

	var ae *ActionError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Unknown error", ae.Message)
	assert.ErrorIs(t, err, errRejected)
}

func TestStopChargingPrefersInProgressSession(t *testing.T) {
	f := newFixture(t)
	recordTx := int64(7)

	f.sessions.EXPECT().ListSessions(gomock.Any(), "CP-1").Return([]models.ChargingSession{
		{TransactionID: 3, ChargePointID: "CP-1", Status: models.SessionStatusCompleted},
		{TransactionID: 9, ChargePointID: "CP-2", Status: models.SessionStatusActive},
		{TransactionID: 11, ChargePointID: "CP-1", Status: models.SessionStatusPending},
	}, nil)
	f.backend.EXPECT().StopCharging(gomock.Any(), &models.StopChargingRequest{TransactionID: 11, ChargerID: "CP-1"}).
		Return(&models.ActionResult{Success: true}, nil)
	f.refresher.EXPECT().Refresh()

	_, err := f.gateway.StopCharging(context.Background(), editable, stoppable("CP-1", &recordTx))
	require.NoError(t, err)
}

func TestStopChargingFallsBackToRecordThenBestEffort(t *testing.T) {
	f := newFixture(t)
	recordTx := int64(7)

	f.sessions.EXPECT().ListSessions(gomock.Any(), "CP-1").Return(nil, nil)
	f.sessions.EXPECT().ListSessions(gomock.Any(), "CP-2").Return(nil, errors.New("backend down"))
	gomock.InOrder(
		f.backend.EXPECT().StopCharging(gomock.Any(), &models.StopChargingRequest{TransactionID: 7, ChargerID: "CP-1"}).
			Return(&models.ActionResult{Success: true}, nil),
		f.backend.EXPECT().StopCharging(gomock.Any(), &models.StopChargingRequest{TransactionID: 0, ChargerID: "CP-2"}).
			Return(&models.ActionResult{Success: true}, nil),
	)
	f.refresher.EXPECT().Refresh().Times(2)

	_, err := f.gateway.StopCharging(context.Background(), editable, stoppable("CP-1", &recordTx))
	require.NoError(t, err)

	_, err = f.gateway.StopCharging(context.Background(), editable, stoppable("CP-2", nil))
	require.NoError(t, err)
}

func TestStopWithoutSessionSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	r := NewMockRefresher(ctrl)
	g := New(b, r, nil, logger.NewTestLogger())

	tx := int64(21)
	assert.Equal(t, int64(21), g.TransactionFor(context.Background(), stoppable("CP-1", &tx)))
	assert.Zero(t, g.TransactionFor(context.Background(), stoppable("CP-1", nil)))
}

func TestStopChargingLooksUpSessionsOfTargetCharger(t *testing.T) {
	f := newFixture(t)

	// the charger record has no transaction; only the per-charger lookup knows it
	f.sessions.EXPECT().ListSessions(gomock.Any(), "CP-9").Return([]models.ChargingSession{
		{TransactionID: 55, ChargePointID: "CP-9", Status: models.SessionStatusActive},
	}, nil)
	f.backend.EXPECT().StopCharging(gomock.Any(), &models.StopChargingRequest{TransactionID: 55, ChargerID: "CP-9"}).
		Return(&models.ActionResult{Success: true}, nil)
	f.refresher.EXPECT().Refresh()

	_, err := f.gateway.StopCharging(context.Background(), editable, stoppable("CP-9", nil))
	require.NoError(t, err)
}

func TestGetConfigurationIsReadOnly(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().GetConfiguration(gomock.Any(), "CP-1", "HeartbeatInterval").
		Return(&models.ConfigurationResponse{Success: true}, nil)

	res, err := f.gateway.GetConfiguration(context.Background(), "CP-1", "HeartbeatInterval")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestChangeConfiguration(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().ChangeConfiguration(gomock.Any(), "CP-1", "HeartbeatInterval", "30").
		Return(nil, errors.New("connection refused"))
	f.refresher.EXPECT().Refresh().Times(1)

	_, err := f.gateway.ChangeConfiguration(context.Background(), editable, "CP-1", "HeartbeatInterval", "30")

	var ae *ActionError
	require.True(t, errors.As(err, &ae))
	assert.Contains(t, ae.Message, "connection refused")
	assert.Contains(t, ae.Op, "HeartbeatInterval")
}

func TestApplySettings(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.backend.EXPECT().ChangeConfiguration(gomock.Any(), "CP-1", SettingUserPass, "1234").
			Return(&models.ActionResult{Success: true}, nil),
		f.backend.EXPECT().ChangeConfiguration(gomock.Any(), "CP-1", SettingStatusLight, "off").
			Return(&models.ActionResult{Success: false, Message: "Rejected"}, nil),
		f.backend.EXPECT().ChangeConfiguration(gomock.Any(), "CP-1", SettingLogoLight, "on").
			Return(&models.ActionResult{Success: true}, nil),
	)
	f.refresher.EXPECT().Refresh().Times(1)

	report, err := f.gateway.ApplySettings(context.Background(), editable, "CP-1", map[string]string{
		SettingLogoLight:     "on",
		SettingStatusLight:   "off",
		SettingUserPass:      " 1234 ",
		SettingBackSelection: "",
		"Unrelated":          "x",
	})
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{SettingUserPass, SettingLogoLight}, report.Applied)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, SettingStatusLight, report.Failed[0].Key)
}

func TestApplySettingsRequiresOne(t *testing.T) {
	f := newFixture(t)

	_, err := f.gateway.ApplySettings(context.Background(), editable, "CP-1", map[string]string{SettingUserPass: "  "})
	assert.ErrorIs(t, err, errNoSettings)
}

func TestNilRefresherIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	g := New(b, nil, nil, logger.NewTestLogger())

	b.EXPECT().ChangeConfiguration(gomock.Any(), "CP-1", SettingLogoLight, "on").
		Return(&models.ActionResult{Success: true}, nil)

	res, err := g.ChangeConfiguration(context.Background(), editable, "CP-1", SettingLogoLight, "on")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

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

// Package actions gates and performs the console's mutating calls: remote
// start, remote stop and configuration changes.
package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/carverauto/chargeradar/pkg/backend"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/viewmode"
)

const (
	// DashboardIDTag identifies remote starts issued from the console.
	DashboardIDTag     = "DASHBOARD_USER"
	DefaultConnectorID = 1

	unknownError = "Unknown error"

	opStart     = "start charging"
	opStop      = "stop charging"
	opConfigure = "change configuration"
)

// Settings keys applied in this order by ApplySettings.
const (
	SettingUserPass        = "UserPass"
	SettingBackSelection   = "BackSelection"
	SettingStatusLight     = "StatusLight"
	SettingBackgroundLight = "BackgroundLight"
	SettingLogoLight       = "LogoLight"
)

//nolint:gochecknoglobals // fixed application order
var settingsOrder = []string{
	SettingUserPass, SettingBackSelection, SettingStatusLight, SettingBackgroundLight, SettingLogoLight,
}

// SettingFailure is one key ApplySettings could not change.
type SettingFailure struct {
	Key string
	Err error
}

// SettingsReport summarises an ApplySettings run.
type SettingsReport struct {
	Applied []string
	Failed  []SettingFailure
}

// OK reports whether every requested key was applied.
func (r *SettingsReport) OK() bool {
	return len(r.Failed) == 0
}

// Gateway performs actions only when both the session capability and the
// charger's reconciled state allow them. Every attempted call is followed by
// exactly one refresh, and nothing is ever retried.
type Gateway struct {
	backend   Backend
	refresher Refresher
	sessions  SessionSource
	logger    logger.Logger
}

// New returns a gateway. sessions may be nil, in which case stop falls back
// to the charger record's transaction id. A nil refresher is for one-shot
// callers with nothing to refresh.
func New(b Backend, refresher Refresher, sessions SessionSource, log logger.Logger) *Gateway {
	if refresher == nil {
		refresher = noRefresh{}
	}

	return &Gateway{backend: b, refresher: refresher, sessions: sessions, logger: log}
}

type noRefresh struct{}

func (noRefresh) Refresh() {}

// StartCharging requests a remote start on connector 1.
func (g *Gateway) StartCharging(
	ctx context.Context, capability viewmode.Capability, view *models.ChargerView) (*models.ActionResult, error) {
	if !capability.Editable {
		return nil, ErrNotEditable
	}

	if !view.State.CanStart {
		return nil, ErrActionNotPermitted
	}

	id := view.Record.ChargePointID

	res, err := g.backend.StartCharging(ctx, &models.StartChargingRequest{
		ChargerID:   id,
		ConnectorID: DefaultConnectorID,
		IDTag:       DashboardIDTag,
	})

	return g.finish(opStart, id, res, err)
}

// StopCharging requests a remote stop. The transaction is taken from the
// charger's in-progress session, then from the charger record; with neither
// the backend is asked for a best-effort stop by charger id.
func (g *Gateway) StopCharging(
	ctx context.Context, capability viewmode.Capability, view *models.ChargerView) (*models.ActionResult, error) {
	if !capability.Editable {
		return nil, ErrNotEditable
	}

	if !view.State.CanStop {
		return nil, ErrActionNotPermitted
	}

	id := view.Record.ChargePointID
	tx := g.transactionFor(ctx, view)

	if tx == 0 {
		g.logger.Info().Str("charge_point_id", id).Msg("No active session found, sending best-effort stop")
	}

	res, err := g.backend.StopCharging(ctx, &models.StopChargingRequest{TransactionID: tx, ChargerID: id})

	return g.finish(opStop, id, res, err)
}

// TransactionFor reports the transaction a stop on view would target.
func (g *Gateway) TransactionFor(ctx context.Context, view *models.ChargerView) int64 {
	return g.transactionFor(ctx, view)
}

// transactionFor looks the charger's sessions up at stop time, independent of
// any session filter the poller uses.
func (g *Gateway) transactionFor(ctx context.Context, view *models.ChargerView) int64 {
	id := view.Record.ChargePointID

	if g.sessions != nil {
		sessions, err := g.sessions.ListSessions(ctx, id)
		if err != nil {
			g.logger.Warn().Err(err).Str("charge_point_id", id).Msg("Session lookup failed, using charger record")
		}

		for i := range sessions {
			s := &sessions[i]
			if s.ChargePointID == id && s.InProgress() && s.TransactionID > 0 {
				return s.TransactionID
			}
		}
	}

	if tx := view.Record.ActiveTransactionID; tx != nil && *tx > 0 {
		return *tx
	}

	return 0
}

// GetConfiguration reads the charger's configuration. It is allowed in
// view-only sessions and triggers no refresh.
func (g *Gateway) GetConfiguration(
	ctx context.Context, chargePointID string, keys ...string) (*models.ConfigurationResponse, error) {
	return g.backend.GetConfiguration(ctx, chargePointID, keys...)
}

// ChangeConfiguration sets one configuration key.
func (g *Gateway) ChangeConfiguration(
	ctx context.Context, capability viewmode.Capability, chargePointID, key, value string) (*models.ActionResult, error) {
	if !capability.Editable {
		return nil, ErrNotEditable
	}

	res, err := g.changeKey(ctx, chargePointID, key, value)

	g.refresher.Refresh()

	return res, err
}

// ApplySettings changes each non-empty setting in a fixed order and keeps
// going past individual failures.
func (g *Gateway) ApplySettings(
	ctx context.Context, capability viewmode.Capability, chargePointID string, settings map[string]string) (*SettingsReport, error) {
	if !capability.Editable {
		return nil, ErrNotEditable
	}

	report := &SettingsReport{}
	attempted := 0

	for _, key := range settingsOrder {
		value := strings.TrimSpace(settings[key])
		if value == "" {
			continue
		}

		attempted++

		if _, err := g.changeKey(ctx, chargePointID, key, value); err != nil {
			report.Failed = append(report.Failed, SettingFailure{Key: key, Err: err})

			continue
		}

		report.Applied = append(report.Applied, key)
	}

	if attempted == 0 {
		return nil, errNoSettings
	}

	g.refresher.Refresh()

	g.logger.Info().
		Str("charge_point_id", chargePointID).
		Int("applied", len(report.Applied)).
		Int("failed", len(report.Failed)).
		Msg("Settings applied")

	return report, nil
}

func (g *Gateway) changeKey(ctx context.Context, chargePointID, key, value string) (*models.ActionResult, error) {
	res, err := g.backend.ChangeConfiguration(ctx, chargePointID, key, value)

	return g.result(opConfigure+" "+key, chargePointID, res, err)
}

// finish converts the outcome and schedules the follow-up refresh.
func (g *Gateway) finish(op, chargePointID string, res *models.ActionResult, err error) (*models.ActionResult, error) {
	out, err := g.result(op, chargePointID, res, err)

	g.refresher.Refresh()

	return out, err
}

func (g *Gateway) result(op, chargePointID string, res *models.ActionResult, err error) (*models.ActionResult, error) {
	if err != nil {
		msg := err.Error()

		var se *backend.StatusError
		if errors.As(err, &se) {
			msg = se.Message
		}

		g.logger.Warn().Err(err).Str("op", op).Str("charge_point_id", chargePointID).Msg("Action failed")

		return nil, &ActionError{Op: op, ChargePointID: chargePointID, Message: msg, Err: err}
	}

	if res == nil || !res.Success {
		msg := unknownError
		if res != nil && res.Message != "" {
			msg = res.Message
		}

		g.logger.Warn().Str("op", op).Str("charge_point_id", chargePointID).Str("message", msg).Msg("Action rejected")

		return res, &ActionError{Op: op, ChargePointID: chargePointID, Message: msg, Err: errRejected}
	}

	g.logger.Info().Str("op", op).Str("charge_point_id", chargePointID).Str("message", res.Message).Msg("Action accepted")

	return res, nil
}

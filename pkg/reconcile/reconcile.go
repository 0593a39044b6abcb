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

// Package reconcile merges the independent, sometimes contradictory signals
// reported for a charger into one display state and a set of permitted actions.
package reconcile

import (
	"strings"
	"time"

	"github.com/carverauto/chargeradar/pkg/models"
)

const (
	// DefaultFreshnessWindow matches the backend's tolerance before it
	// reports a silent charger as offline.
	DefaultFreshnessWindow = 15 * time.Minute

	LabelChargingOffline = "CHARGING (OFFLINE)"

	StyleOffline  = "offline"
	StyleCharging = "charging"
	StyleFaulted  = "faulted"

	badgeOnline  = "badge-online"
	badgeOffline = "badge-offline"
	badgePrefix  = "badge-"
)

// Reconciler derives ChargerState values. The zero value is ready to use.
type Reconciler struct {
	// FreshnessWindow bounds the heartbeat age still considered fresh.
	FreshnessWindow time.Duration
}

// Reconcile derives the state of rec at now using the default freshness window.
func Reconcile(rec *models.ChargerRecord, now time.Time) models.ChargerState {
	return Reconciler{}.Reconcile(rec, now)
}

// Reconcile is pure and total: the same record and instant always produce the
// same state, and a record with every optional field absent is valid input.
func (r Reconciler) Reconcile(rec *models.ChargerRecord, now time.Time) models.ChargerState {
	window := r.FreshnessWindow
	if window <= 0 {
		window = DefaultFreshnessWindow
	}

	var state models.ChargerState

	if age, ok := HeartbeatAge(rec.LastHeartbeat, now); ok {
		seconds := age.Seconds()
		state.HeartbeatAgeSeconds = &seconds
		state.HeartbeatFresh = age <= window
	}

	active := rec.ActiveTransactionID != nil && *rec.ActiveTransactionID > 0
	state.HasActiveSession = active

	status := normalizeStatus(rec.Status)
	availability := normalizeAvailability(rec.Availability)

	// a live transaction outranks whatever availability was last stored
	if active {
		availability = models.AvailabilityCharging
	}

	if status == models.StatusOffline && !active &&
		availability != models.AvailabilityFaulted && availability != models.AvailabilityCharging {
		availability = models.AvailabilityUnavailable
	}

	state.Availability = availability
	state.AvailabilityLabel = strings.ToUpper(string(availability))

	if active && status == models.StatusOffline {
		state.StatusLabel = LabelChargingOffline
	} else {
		state.StatusLabel = strings.ToUpper(string(status))
	}

	state.CanStart = status == models.StatusOnline &&
		(availability == models.AvailabilityAvailable || availability == models.AvailabilityPreparing) &&
		!active
	state.CanStop = availability == models.AvailabilityCharging || active

	state.StyleClass = styleClass(status, availability)
	state.AvailabilityBadgeClass = badgePrefix + string(availability)

	if status == models.StatusOnline {
		state.StatusBadgeClass = badgeOnline
	} else {
		state.StatusBadgeClass = badgeOffline
	}

	return state
}

// ReconcileAll derives a view for every record, preserving order.
func (r Reconciler) ReconcileAll(records []models.ChargerRecord, now time.Time) []models.ChargerView {
	views := make([]models.ChargerView, 0, len(records))

	for i := range records {
		views = append(views, models.ChargerView{
			Record: records[i],
			State:  r.Reconcile(&records[i], now),
		})
	}

	return views
}

// styleClass ranks connectivity over charging over faults.
func styleClass(status models.ChargerStatus, availability models.Availability) string {
	switch {
	case status == models.StatusOffline:
		return StyleOffline
	case availability == models.AvailabilityCharging:
		return StyleCharging
	case availability == models.AvailabilityFaulted:
		return StyleFaulted
	default:
		return ""
	}
}

// An absent status is treated as offline.
func normalizeStatus(s models.ChargerStatus) models.ChargerStatus {
	v := strings.ToLower(strings.TrimSpace(string(s)))
	if v == "" {
		return models.StatusOffline
	}

	return models.ChargerStatus(v)
}

func normalizeAvailability(a models.Availability) models.Availability {
	v := strings.ToLower(strings.TrimSpace(string(a)))
	if v == "" {
		return models.AvailabilityUnknown
	}

	return models.Availability(v)
}

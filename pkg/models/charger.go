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

package models

// ChargerStatus is the connectivity reported by the backend.
type ChargerStatus string

const (
	StatusOnline  ChargerStatus = "online"
	StatusOffline ChargerStatus = "offline"
)

// Availability is the operational readiness of a charger, distinct from its
// connectivity.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityPreparing   Availability = "preparing"
	AvailabilityCharging    Availability = "charging"
	AvailabilityFaulted     Availability = "faulted"
	AvailabilityUnavailable Availability = "unavailable"
	AvailabilityUnknown     Availability = "unknown"
)

// ChargerRecord is one element of GET /api/chargers. Every field other than the
// identifiers may be absent. LastHeartbeat is kept verbatim because the
// backend emits zone-less timestamps that must be read as UTC.
type ChargerRecord struct {
	ID                  int64         `json:"id"`
	ChargePointID       string        `json:"charge_point_id"`
	Status              ChargerStatus `json:"status,omitempty"`
	Availability        Availability  `json:"availability,omitempty"`
	ActiveTransactionID *int64        `json:"active_transaction_id,omitempty"`
	LastHeartbeat       *string       `json:"last_heartbeat,omitempty"`
	Vendor              string        `json:"vendor,omitempty"`
	Model               string        `json:"model,omitempty"`
	FirmwareVersion     string        `json:"firmware_version,omitempty"`
}

// ChargerState is the reconciled view of a ChargerRecord at one instant. It is
// derived from scratch on every poll and never updated in place.
type ChargerState struct {
	StatusLabel            string       `json:"status_label"`
	Availability           Availability `json:"availability"`
	AvailabilityLabel      string       `json:"availability_label"`
	HeartbeatAgeSeconds    *float64     `json:"heartbeat_age_seconds"`
	HeartbeatFresh         bool         `json:"heartbeat_fresh"`
	HasActiveSession       bool         `json:"has_active_session"`
	CanStart               bool         `json:"can_start"`
	CanStop                bool         `json:"can_stop"`
	StyleClass             string       `json:"style_class"`
	StatusBadgeClass       string       `json:"status_badge_class"`
	AvailabilityBadgeClass string       `json:"availability_badge_class"`
}

// ChargerView pairs a record with its reconciled state for rendering.
type ChargerView struct {
	Record ChargerRecord `json:"record"`
	State  ChargerState  `json:"state"`
}

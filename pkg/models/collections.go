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

const (
	SessionStatusActive    = "active"
	SessionStatusPending   = "pending"
	SessionStatusCompleted = "completed"
)

// ChargingSession is one element of GET /api/sessions.
type ChargingSession struct {
	ID             int64   `json:"id"`
	TransactionID  int64   `json:"transaction_id"`
	StartTime      string  `json:"start_time"`
	StopTime       *string `json:"stop_time,omitempty"`
	EnergyConsumed float64 `json:"energy_consumed"`
	Status         string  `json:"status"`
	ChargerID      int64   `json:"charger_id"`
	ChargePointID  string  `json:"charge_point_id"`
}

// InProgress reports whether the session still holds the charger.
func (s *ChargingSession) InProgress() bool {
	return s.Status == SessionStatusActive || s.Status == SessionStatusPending
}

// Fault is one element of GET /api/faults.
type Fault struct {
	ID            int64   `json:"id"`
	FaultType     string  `json:"fault_type"`
	Message       *string `json:"message,omitempty"`
	Timestamp     string  `json:"timestamp"`
	Cleared       bool    `json:"cleared"`
	ClearedAt     *string `json:"cleared_at,omitempty"`
	ChargerID     int64   `json:"charger_id"`
	ChargePointID string  `json:"charge_point_id"`
}

// MeterValue is returned by GET /api/metering/{id}/latest.
type MeterValue struct {
	ID            int64    `json:"id"`
	Timestamp     string   `json:"timestamp"`
	Voltage       *float64 `json:"voltage"`
	Current       *float64 `json:"current"`
	Power         *float64 `json:"power"`
	TotalKWh      *float64 `json:"total_kwh"`
	TransactionID *int64   `json:"transaction_id,omitempty"`
}

// DeviceInfo is returned by GET /api/device/{id}.
type DeviceInfo struct {
	ChargePointID   string `json:"charge_point_id"`
	Vendor          string `json:"vendor,omitempty"`
	Model           string `json:"model,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`
}

type ConfigurationKey struct {
	Key      string  `json:"key"`
	Readonly *bool   `json:"readonly,omitempty"`
	Value    *string `json:"value,omitempty"`
}

// ConfigurationResponse is returned by GET /api/chargers/{id}/configuration.
type ConfigurationResponse struct {
	Success       bool               `json:"success"`
	Message       string             `json:"message"`
	Configuration []ConfigurationKey `json:"configuration"`
}

// ActionResult is the common reply of the charging and configuration endpoints.
type ActionResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID *int64 `json:"transaction_id,omitempty"`
}

type StartChargingRequest struct {
	ChargerID   string `json:"charger_id"`
	ConnectorID int    `json:"connector_id"`
	IDTag       string `json:"id_tag"`
}

type StopChargingRequest struct {
	TransactionID int64  `json:"transaction_id"`
	ChargerID     string `json:"charger_id,omitempty"`
}

type ChangeConfigurationRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

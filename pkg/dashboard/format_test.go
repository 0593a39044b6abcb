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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultTypeName(t *testing.T) {
	tests := map[string]string{
		"overcurrent":    "Overcurrent",
		"ground_fault":   "Ground Fault",
		"emergency_stop": "Emergency Stop",
		"cp_error":       "CP Error",
		"over_voltage":   "over_voltage",
		"":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, FaultTypeName(in), in)
	}
}

func TestFormatTimestampInDisplayZone(t *testing.T) {
	kl, err := time.LoadLocation(DefaultDisplayTimezone)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "naive is utc", raw: "2025-01-15T10:00:00", want: "15/01/2025, 18:00:00"},
		{name: "fractional seconds", raw: "2025-01-15T10:00:00.123456", want: "15/01/2025, 18:00:00"},
		{name: "explicit utc", raw: "2025-01-15T10:00:00Z", want: "15/01/2025, 18:00:00"},
		{name: "explicit offset", raw: "2025-01-15T18:00:00+08:00", want: "15/01/2025, 18:00:00"},
		{name: "crosses midnight", raw: "2025-01-15T20:30:00", want: "16/01/2025, 04:30:00"},
		{name: "empty", raw: "", want: notAvailable},
		{name: "garbage kept verbatim", raw: "yesterday", want: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.raw, kl))
		})
	}
}

func TestFormatTimestampNilLocationIsUTC(t *testing.T) {
	assert.Equal(t, "15/01/2025, 10:00:00", FormatTimestamp("2025-01-15T10:00:00", nil))
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, never, formatOptional(nil, time.UTC, never))
	assert.Equal(t, ongoing, formatOptional(ptr("  "), time.UTC, ongoing))
	assert.Equal(t, "15/01/2025, 10:00:00", formatOptional(ptr("2025-01-15 10:00:00"), time.UTC, never))
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "unknown", FormatAge(nil))
	assert.Equal(t, "0s ago", FormatAge(ptr(0.2)))
	assert.Equal(t, "45s ago", FormatAge(ptr(44.6)))
	assert.Equal(t, "2m ago", FormatAge(ptr(150.0)))
	assert.Equal(t, "3h ago", FormatAge(ptr(3*3600.0+59)))
}

func TestFormatReadings(t *testing.T) {
	assert.Equal(t, notAvailable, formatReading(nil, 2, "A"))
	assert.Equal(t, "7.40 kWh", formatReading(ptr(7.4), 2, "kWh"))
	assert.Equal(t, "0.00 kWh", formatEnergy(0))
	assert.Equal(t, notAvailable, orNA(""))
	assert.Equal(t, "Acme", orNA("Acme"))
}

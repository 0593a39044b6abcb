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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentityRequiresTokenAndRole(t *testing.T) {
	tests := []struct {
		name  string
		token string
		info  *StaffInfo
		ok    bool
	}{
		{name: "complete", token: "abc", info: &StaffInfo{Role: RoleStaff, Name: "Aina"}, ok: true},
		{name: "missing token", token: "", info: &StaffInfo{Role: RoleAdmin}},
		{name: "blank token", token: "   ", info: &StaffInfo{Role: RoleAdmin}},
		{name: "missing info", token: "abc"},
		{name: "missing role", token: "abc", info: &StaffInfo{Name: "Aina"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NewIdentity(tt.token, tt.info)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				require.NotNil(t, id)
				assert.Equal(t, tt.token, id.Token)
				assert.Equal(t, tt.info.Role, id.Role)
			} else {
				assert.Nil(t, id)
			}
		})
	}
}

func TestRoleKnown(t *testing.T) {
	assert.True(t, RoleManager.Known())
	assert.False(t, Role("superuser").Known())
	assert.False(t, Role("superuser").IsAdmin())
}

func TestChargerRecordDecodesNullsAsAbsent(t *testing.T) {
	payload := `{"id":1,"charge_point_id":"CP-01","status":null,"availability":null,` +
		`"active_transaction_id":null,"last_heartbeat":null,"vendor":null}`

	var rec ChargerRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "CP-01", rec.ChargePointID)
	assert.Empty(t, rec.Status)
	assert.Empty(t, rec.Availability)
	assert.Nil(t, rec.ActiveTransactionID)
	assert.Nil(t, rec.LastHeartbeat)
}

func TestDurationUnmarshal(t *testing.T) {
	var cfg struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a":"2s","b":5000000000}`), &cfg))
	assert.Equal(t, 2*time.Second, time.Duration(cfg.A))
	assert.Equal(t, 5*time.Second, time.Duration(cfg.B))

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"a":"soon"}`), &cfg))
}

func TestSessionInProgress(t *testing.T) {
	assert.True(t, (&ChargingSession{Status: SessionStatusPending}).InProgress())
	assert.False(t, (&ChargingSession{Status: SessionStatusCompleted}).InProgress())
}

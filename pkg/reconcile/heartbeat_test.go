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

package reconcile

import (
	"testing"
	"time"

	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampNaiveIsUTC(t *testing.T) {
	want := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2025-03-14T08:00:00",
		"2025-03-14 08:00:00",
		"2025-03-14T08:00:00.000000",
		"2025-03-14T08:00:00Z",
		"2025-03-14T16:00:00+08:00",
		"2025-03-14T16:00:00+0800",
	} {
		got, err := ParseTimestamp(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s parsed as %s", raw, got)
	}
}

func TestParseTimestampFractionalSeconds(t *testing.T) {
	got, err := ParseTimestamp("2025-03-14T08:00:00.250")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "  ", "14/03/2025", "2025-13-40T99:00:00"} {
		_, err := ParseTimestamp(raw)
		assert.Error(t, err, raw)
	}
}

func TestHeartbeatAgeIndependentOfViewerZone(t *testing.T) {
	raw := "2025-03-14T08:00:00"
	nowUTC := time.Date(2025, 3, 14, 8, 5, 0, 0, time.UTC)
	nowKL := nowUTC.In(time.FixedZone("UTC+8", 8*60*60))

	// pretend the viewer sits in UTC+8; a naive timestamp must still read as UTC
	saved := time.Local
	time.Local = time.FixedZone("UTC+8", 8*60*60)

	defer func() { time.Local = saved }()

	fromUTC := Reconcile(&models.ChargerRecord{LastHeartbeat: &raw}, nowUTC)
	fromKL := Reconcile(&models.ChargerRecord{LastHeartbeat: &raw}, nowKL)

	require.NotNil(t, fromUTC.HeartbeatAgeSeconds)
	require.NotNil(t, fromKL.HeartbeatAgeSeconds)
	assert.InDelta(t, 300.0, *fromUTC.HeartbeatAgeSeconds, 1e-9)
	assert.Equal(t, *fromUTC.HeartbeatAgeSeconds, *fromKL.HeartbeatAgeSeconds)
}

func TestHeartbeatAgeNegativeIsUnknown(t *testing.T) {
	raw := "2025-03-14T08:10:00Z"
	_, ok := HeartbeatAge(&raw, time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

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
	"errors"
	"strings"
	"time"
)

var errUnparsableTimestamp = errors.New("unparsable timestamp")

// Layouts carrying an explicit zone or offset.
//
//nolint:gochecknoglobals // read-only layout tables
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
}

// Layouts without a zone. time.Parse yields UTC for these, which is the
// backend's contract for zone-less timestamps. Fractional seconds are
// accepted after the seconds field without being spelled out.
//
//nolint:gochecknoglobals // read-only layout tables
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a backend timestamp. A value with neither a "Z" marker
// nor a numeric offset is interpreted as UTC, never as local time.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errUnparsableTimestamp
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errUnparsableTimestamp
}

// HeartbeatAge returns now minus the heartbeat instant. The second result is
// false when the heartbeat is absent, unparsable, or in the future; such an
// age is unknown and must not be treated as fresh.
func HeartbeatAge(raw *string, now time.Time) (time.Duration, bool) {
	if raw == nil {
		return 0, false
	}

	ts, err := ParseTimestamp(*raw)
	if err != nil {
		return 0, false
	}

	age := now.Sub(ts)
	if age < 0 {
		return 0, false
	}

	return age, true
}

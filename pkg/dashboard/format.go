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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/carverauto/chargeradar/pkg/reconcile"
)

const (
	notAvailable = "N/A"
	never        = "Never"
	ongoing      = "Ongoing"

	// day/month/year, as operators in the default zone read dates.
	displayLayout = "02/01/2006, 15:04:05"
)

//nolint:gochecknoglobals // read-only lookup table
var faultTypeNames = map[string]string{
	"overcurrent":    "Overcurrent",
	"ground_fault":   "Ground Fault",
	"emergency_stop": "Emergency Stop",
	"cp_error":       "CP Error",
}

// FaultTypeName returns the display name of a fault type. Unknown types are
// shown as reported.
func FaultTypeName(faultType string) string {
	if name, ok := faultTypeNames[faultType]; ok {
		return name
	}

	return faultType
}

// FormatTimestamp renders a backend timestamp in loc. Zone-less values are UTC.
// An empty value is N/A; an unparsable one is shown verbatim.
func FormatTimestamp(raw string, loc *time.Location) string {
	if strings.TrimSpace(raw) == "" {
		return notAvailable
	}

	t, err := reconcile.ParseTimestamp(raw)
	if err != nil {
		return raw
	}

	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(displayLayout)
}

// formatOptional renders an optional timestamp, with fallback when absent.
func formatOptional(raw *string, loc *time.Location, fallback string) string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return fallback
	}

	return FormatTimestamp(*raw, loc)
}

// FormatAge renders a heartbeat age in whole seconds, minutes or hours.
func FormatAge(seconds *float64) string {
	if seconds == nil {
		return "unknown"
	}

	age := time.Duration(math.Round(*seconds)) * time.Second

	switch {
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}
}

func formatEnergy(kwh float64) string {
	return fmt.Sprintf("%.2f kWh", kwh)
}

func formatReading(v *float64, precision int, unit string) string {
	if v == nil {
		return notAvailable
	}

	return fmt.Sprintf("%.*f %s", precision, *v, unit)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}

	return s
}

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

//go:generate mockgen -destination=mock_dashboard.go -package=dashboard github.com/carverauto/chargeradar/pkg/dashboard Actions,Refresher,Metering

import (
	"context"

	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/viewmode"
)

// Actions performs the gated charger commands.
type Actions interface {
	StartCharging(ctx context.Context, capability viewmode.Capability, view *models.ChargerView) (*models.ActionResult, error)
	StopCharging(ctx context.Context, capability viewmode.Capability, view *models.ChargerView) (*models.ActionResult, error)
}

// Refresher asks the scheduler for an immediate cycle.
type Refresher interface {
	Refresh()
}

// Metering reads the latest meter sample of a charger.
type Metering interface {
	LatestMeterValue(ctx context.Context, chargePointID string) (*models.MeterValue, error)
}

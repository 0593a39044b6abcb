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

package actions

//go:generate mockgen -destination=mock_actions.go -package=actions github.com/carverauto/chargeradar/pkg/actions Backend,Refresher,SessionSource

import (
	"context"

	"github.com/carverauto/chargeradar/pkg/models"
)

// Backend is the mutating surface of the charging platform API.
type Backend interface {
	StartCharging(ctx context.Context, req *models.StartChargingRequest) (*models.ActionResult, error)
	StopCharging(ctx context.Context, req *models.StopChargingRequest) (*models.ActionResult, error)
	GetConfiguration(ctx context.Context, chargePointID string, keys ...string) (*models.ConfigurationResponse, error)
	ChangeConfiguration(ctx context.Context, chargePointID, key, value string) (*models.ActionResult, error)
}

// Refresher schedules a re-reconciliation pass.
type Refresher interface {
	Refresh()
}

// SessionSource lists the charging sessions of one charger.
type SessionSource interface {
	ListSessions(ctx context.Context, chargePointID string) ([]models.ChargingSession, error)
}

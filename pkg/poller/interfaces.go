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

package poller

//go:generate mockgen -destination=mock_poller.go -package=poller github.com/carverauto/chargeradar/pkg/poller Clock,Ticker,Fetcher,Sink

import (
	"context"
	"time"

	"github.com/carverauto/chargeradar/pkg/models"
)

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Fetcher reads the collections polled every cycle.
type Fetcher interface {
	ListChargers(ctx context.Context) ([]models.ChargerRecord, error)
	ListSessions(ctx context.Context, chargePointID string) ([]models.ChargingSession, error)
	ListFaults(ctx context.Context, includeCleared bool) ([]models.Fault, error)
}

// Sink receives every view model the scheduler publishes, in publish order.
// Publish is called with the scheduler's apply lock held and must not block
// on the scheduler.
type Sink interface {
	Publish(vm ViewModel)
}

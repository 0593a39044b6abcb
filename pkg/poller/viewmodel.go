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

import (
	"time"

	"github.com/carverauto/chargeradar/pkg/models"
)

// Category is one independently fetched collection.
type Category int

const (
	CategoryChargers Category = iota
	CategorySessions
	CategoryFaults

	categoryCount = 3
)

func (c Category) String() string {
	switch c {
	case CategoryChargers:
		return "chargers"
	case CategorySessions:
		return "sessions"
	case CategoryFaults:
		return "faults"
	default:
		return "unknown"
	}
}

// Placeholders shown in place of a panel's rows.
const (
	PlaceholderChargersEmpty = "No chargers registered"
	PlaceholderChargersError = "Error loading charger status"
	PlaceholderSessionsEmpty = "No charging sessions found"
	PlaceholderSessionsError = "Error loading sessions"
	PlaceholderFaultsEmpty   = "No faults found"
	PlaceholderFaultsError   = "Error loading faults"
	PlaceholderLoading       = "Loading..."
)

// PanelState describes what a category panel currently shows.
type PanelState int

const (
	PanelLoading PanelState = iota
	PanelReady
	PanelEmpty
	PanelError
)

// Panel is the per-category status of the view model.
type Panel struct {
	State       PanelState
	Placeholder string
	Err         error
	Cycle       uint64
	UpdatedAt   time.Time
}

// HasRows reports whether the panel's rows should be rendered.
func (p Panel) HasRows() bool {
	return p.State == PanelReady
}

// ViewModel is the published state of the console. Slices are replaced, not
// mutated, between publications, so a received ViewModel is safe to keep.
type ViewModel struct {
	Chargers []models.ChargerView
	Sessions []models.ChargingSession
	Faults   []models.Fault

	ChargersPanel Panel
	SessionsPanel Panel
	FaultsPanel   Panel
}

func newViewModel() ViewModel {
	loading := Panel{State: PanelLoading, Placeholder: PlaceholderLoading}

	return ViewModel{ChargersPanel: loading, SessionsPanel: loading, FaultsPanel: loading}
}

// Panel returns the panel of category c.
func (vm *ViewModel) Panel(c Category) Panel {
	switch c {
	case CategoryChargers:
		return vm.ChargersPanel
	case CategorySessions:
		return vm.SessionsPanel
	case CategoryFaults:
		return vm.FaultsPanel
	default:
		return Panel{}
	}
}

// ActiveTransaction returns the transaction of the in-progress session on
// chargePointID, or 0 when there is none.
func (vm *ViewModel) ActiveTransaction(chargePointID string) int64 {
	for i := range vm.Sessions {
		s := &vm.Sessions[i]
		if s.ChargePointID == chargePointID && s.InProgress() {
			return s.TransactionID
		}
	}

	return 0
}

func panelFor(err error, rows int, cycle uint64, now time.Time, emptyText, errText string) Panel {
	switch {
	case err != nil:
		return Panel{State: PanelError, Placeholder: errText, Err: err, Cycle: cycle, UpdatedAt: now}
	case rows == 0:
		return Panel{State: PanelEmpty, Placeholder: emptyText, Cycle: cycle, UpdatedAt: now}
	default:
		return Panel{State: PanelReady, Cycle: cycle, UpdatedAt: now}
	}
}

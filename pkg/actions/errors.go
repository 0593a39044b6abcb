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

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEditable is returned for any mutating call from a view-only session.
	ErrNotEditable = errors.New("session is view-only")
	// ErrActionNotPermitted is returned when the charger's reconciled state
	// does not allow the action.
	ErrActionNotPermitted = errors.New("action not permitted in current charger state")

	errNoSettings = errors.New("no settings selected")
	errRejected   = errors.New("request rejected by backend")
)

// ActionError is a failed start, stop or configuration call. Message is what
// the operator is shown.
type ActionError struct {
	Op            string
	ChargePointID string
	Message       string
	Err           error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("failed to %s on %s: %s", e.Op, e.ChargePointID, e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

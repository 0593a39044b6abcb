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

package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthInvalid means no usable identity is persisted; the operator must
	// log in again.
	ErrAuthInvalid = errors.New("authentication required")
	// ErrAccessDenied means the identity is valid but may not open the view.
	ErrAccessDenied = errors.New("access denied")

	errLoginRejected = errors.New("login rejected")
	errMissingCreds  = errors.New("email and password are required")
)

// RedirectError tells the caller to abandon the current view and open Target.
// Nothing may be fetched or rendered for the abandoned view.
type RedirectError struct {
	Target string
	Cause  error
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect to %s: %v", e.Target, e.Cause)
}

func (e *RedirectError) Unwrap() error {
	return e.Cause
}

// AsRedirect extracts a RedirectError from err.
func AsRedirect(err error) (*RedirectError, bool) {
	var re *RedirectError
	if errors.As(err, &re) {
		return re, true
	}

	return nil, false
}

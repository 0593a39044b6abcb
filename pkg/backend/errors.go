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

package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedStatus is wrapped by every non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	errBaseURLRequired = errors.New("backend base url is required")
	errEmptyChargerID  = errors.New("charger id is required")
)

// StatusError is a non-2xx reply. Message is the server's own explanation
// when it gave one.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ServerMessage extracts the most specific explanation from an error reply:
// the "message" field, then a string "detail", then the raw body, then the
// bare status code.
func ServerMessage(code int, body []byte) string {
	var decoded struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}

	if err := json.Unmarshal(body, &decoded); err == nil {
		if decoded.Message != "" {
			return decoded.Message
		}

		var detail string
		if len(decoded.Detail) > 0 && json.Unmarshal(decoded.Detail, &detail) == nil && detail != "" {
			return detail
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return fmt.Sprintf("HTTP %d", code)
}

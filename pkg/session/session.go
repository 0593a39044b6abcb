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

// Package session persists the operator identity between console runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/chargeradar/pkg/models"
)

// Persisted entry names. adminToken and adminName belong to the legacy admin
// login and are only ever removed.
const (
	KeyStaffToken = "staffToken"
	KeyStaffInfo  = "staffInfo"
	KeyAdminToken = "adminToken"
	KeyAdminName  = "adminName"
)

var (
	// ErrNoIdentity means the persisted entries do not form a usable identity.
	ErrNoIdentity = errors.New("no valid identity persisted")

	errMissingToken = errors.New("staff token is missing")
	errMissingInfo  = errors.New("staff info is missing")
	errMissingRole  = errors.New("staff info has no role")
)

//nolint:gochecknoglobals // fixed removal order
var identityKeys = []string{KeyStaffToken, KeyStaffInfo, KeyAdminToken, KeyAdminName}

// Session reads and writes the identity entries of a Store.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Load returns the persisted identity. Any structural problem, including a
// staffInfo without a role, is reported as ErrNoIdentity; errors from the
// store itself are returned unwrapped.
func (s *Session) Load() (*models.Identity, error) {
	token, ok, err := s.store.Get(KeyStaffToken)
	if err != nil {
		return nil, err
	}

	if !ok || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: %w", ErrNoIdentity, errMissingToken)
	}

	raw, ok, err := s.store.Get(KeyStaffInfo)
	if err != nil {
		return nil, err
	}

	if !ok || strings.TrimSpace(raw) == "" || raw == "null" {
		return nil, fmt.Errorf("%w: %w", ErrNoIdentity, errMissingInfo)
	}

	var info models.StaffInfo

	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("%w: staff info: %w", ErrNoIdentity, err)
	}

	identity, ok := models.NewIdentity(token, &info)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrNoIdentity, errMissingRole)
	}

	return identity, nil
}

// Save persists a freshly issued token with its profile.
func (s *Session) Save(token string, info *models.StaffInfo) error {
	if _, ok := models.NewIdentity(token, info); !ok {
		return fmt.Errorf("%w: refusing to persist a partial identity", ErrNoIdentity)
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode staff info: %w", err)
	}

	if err := s.store.Set(KeyStaffInfo, string(data)); err != nil {
		return err
	}

	return s.store.Set(KeyStaffToken, token)
}

// Token returns the persisted token, if any, without validating the profile.
func (s *Session) Token() string {
	token, _, err := s.store.Get(KeyStaffToken)
	if err != nil {
		return ""
	}

	return token
}

// Clear removes every identity entry, including the legacy admin ones.
func (s *Session) Clear() error {
	return s.store.Remove(identityKeys...)
}

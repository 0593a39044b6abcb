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

package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seeded(entries map[string]string) *MemoryStore {
	store := NewMemoryStore()
	for k, v := range entries {
		_ = store.Set(k, v)
	}

	return store
}

func TestLoadValidIdentity(t *testing.T) {
	s := New(seeded(map[string]string{
		KeyStaffToken: "tok-1",
		KeyStaffInfo:  `{"id":3,"name":"Aina","email":"aina@example.com","department":"IT","role":"manager"}`,
	}))

	identity, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", identity.Token)
	assert.Equal(t, models.RoleManager, identity.Role)
	assert.Equal(t, models.DepartmentIT, identity.Department)
	assert.Equal(t, "Aina", identity.DisplayName)
	assert.False(t, identity.IsAdmin())
}

func TestLoadInvalidIdentity(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
	}{
		{"empty store", nil},
		{"token only", map[string]string{KeyStaffToken: "tok"}},
		{"info only", map[string]string{KeyStaffInfo: `{"role":"admin"}`}},
		{"blank token", map[string]string{KeyStaffToken: "  ", KeyStaffInfo: `{"role":"admin"}`}},
		{"null info", map[string]string{KeyStaffToken: "tok", KeyStaffInfo: "null"}},
		{"malformed info", map[string]string{KeyStaffToken: "tok", KeyStaffInfo: "{role:"}},
		{"missing role", map[string]string{KeyStaffToken: "tok", KeyStaffInfo: `{"name":"Aina","department":"IT"}`}},
		{"empty role", map[string]string{KeyStaffToken: "tok", KeyStaffInfo: `{"role":""}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := New(seeded(tt.entries)).Load()
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrNoIdentity)
		})
	}
}

func TestLoadPropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	boom := errors.New("disk on fire")

	store.EXPECT().Get(KeyStaffToken).Return("", false, boom)

	_, err := New(store).Load()
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoIdentity)
}

func TestClearRemovesEveryIdentityEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().Remove(KeyStaffToken, KeyStaffInfo, KeyAdminToken, KeyAdminName).Return(nil)

	require.NoError(t, New(store).Clear())
}

func TestSaveThenLoad(t *testing.T) {
	store := NewMemoryStore()
	s := New(store)

	err := s.Save("tok-2", &models.StaffInfo{Name: "Ravi", Role: models.RoleAdmin, Department: models.DepartmentOperations})
	require.NoError(t, err)

	identity, err := s.Load()
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
	assert.Equal(t, "tok-2", s.Token())
}

func TestSaveRefusesPartialIdentity(t *testing.T) {
	store := NewMemoryStore()
	s := New(store)

	require.ErrorIs(t, s.Save("", &models.StaffInfo{Role: models.RoleStaff}), ErrNoIdentity)
	require.ErrorIs(t, s.Save("tok", &models.StaffInfo{Name: "x"}), ErrNoIdentity)
	assert.Zero(t, store.Len())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chargeradar", "session.json")

	store, err := NewFileStore(path, logger.NewTestLogger())
	require.NoError(t, err)

	_, ok, err := store.Get(KeyStaffToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyStaffToken, "tok"))
	require.NoError(t, store.Set(KeyAdminName, "root"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileStore(path, logger.NewTestLogger())
	require.NoError(t, err)

	v, ok, err := reopened.Get(KeyStaffToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, reopened.Remove(KeyStaffToken, KeyAdminName))

	_, ok, err = store.Get(KeyAdminName)
	require.NoError(t, err)
	assert.False(t, ok)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".session-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store, err := NewFileStore(path, logger.NewTestLogger())
	require.NoError(t, err)

	_, _, err = store.Get(KeyStaffToken)
	require.Error(t, err)

	// removal recovers by rewriting an empty object
	require.NoError(t, store.Remove(KeyStaffToken))

	_, ok, err := store.Get(KeyStaffToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("", logger.NewTestLogger())
	assert.ErrorIs(t, err, errEmptyPath)
}

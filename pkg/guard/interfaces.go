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

//go:generate mockgen -destination=mock_guard.go -package=guard github.com/carverauto/chargeradar/pkg/guard AuthClient

import (
	"context"

	"github.com/carverauto/chargeradar/pkg/models"
)

// AuthClient is the backend's staff login surface.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.StaffLoginResponse, error)
	Logout(ctx context.Context, token string) error
}

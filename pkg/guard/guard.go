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

// Package guard authorizes every console view activation and owns the
// operator's login and logout.
package guard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/chargeradar/pkg/access"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/session"
	"github.com/carverauto/chargeradar/pkg/viewmode"
)

// PageContext is built once per view activation and shared by reference with
// everything rendered for that view. It must be treated as read-only.
type PageContext struct {
	Identity   models.Identity
	IsAdmin    bool
	Capability viewmode.Capability
	Path       string
	Sections   []access.Section
	Nav        []access.NavLink
	Support    access.NavLink
	RoleBadge  string
}

// Guard is the single entry point for view authorization.
type Guard struct {
	session  *session.Session
	policy   *access.Policy
	enforcer viewmode.Enforcer
	auth     AuthClient
	logger   logger.Logger
}

// New returns a guard. auth may be nil when login and logout are not needed.
func New(sess *session.Session, policy *access.Policy, auth AuthClient, log logger.Logger) *Guard {
	return &Guard{
		session: sess,
		policy:  policy,
		auth:    auth,
		logger:  log,
	}
}

// Activate authorizes path. The login route returns (nil, nil) without
// reading the session so that it can never redirect to itself.
func (g *Guard) Activate(path string) (*PageContext, error) {
	clean := access.CleanPath(path)

	if clean == access.RouteLogin {
		return nil, nil //nolint:nilnil // login is outside the guard
	}

	identity, err := g.session.Load()
	if err != nil {
		g.invalidate(err)

		return nil, &RedirectError{Target: access.RouteLogin, Cause: fmt.Errorf("%w: %w", ErrAuthInvalid, err)}
	}

	allowed, err := g.policy.Check(identity.Role, clean)
	if err != nil {
		g.logger.Error().Err(err).Str("path", clean).Msg("View is missing from the route table")

		return nil, &RedirectError{Target: access.RouteHome, Cause: fmt.Errorf("%w: %w", ErrAccessDenied, err)}
	}

	if !allowed {
		g.logger.Info().
			Str("path", clean).
			Str("role", string(identity.Role)).
			Msg("View not permitted for role")

		return nil, &RedirectError{Target: access.RouteHome, Cause: ErrAccessDenied}
	}

	isAdmin := identity.IsAdmin()

	return &PageContext{
		Identity:   *identity,
		IsAdmin:    isAdmin,
		Capability: g.enforcer.Capability(isAdmin),
		Path:       clean,
		Sections:   g.policy.VisibleSections(identity.Role),
		Nav:        g.policy.FilterNav(identity.Role, access.DefaultNav()),
		Support:    access.SupportLink(isAdmin),
		RoleBadge:  access.RoleBadge(identity.Role),
	}, nil
}

// invalidate clears whatever partial identity is persisted.
func (g *Guard) invalidate(cause error) {
	g.logger.Warn().Err(cause).Msg("Persisted identity is invalid, clearing session")

	if err := g.session.Clear(); err != nil {
		g.logger.Error().Err(err).Msg("Failed to clear session")
	}
}

// Login exchanges credentials for a token and persists the identity.
func (g *Guard) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errMissingCreds
	}

	if g.auth == nil {
		return nil, fmt.Errorf("%w: no backend configured", errLoginRejected)
	}

	resp, err := g.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if !resp.Success {
		return nil, errLoginRejected
	}

	identity, ok := models.NewIdentity(resp.Token, &resp.Staff)
	if !ok {
		return nil, fmt.Errorf("%w: response has no token or role", errLoginRejected)
	}

	if err := g.session.Save(resp.Token, &resp.Staff); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	g.logger.Info().
		Str("role", string(identity.Role)).
		Str("department", string(identity.Department)).
		Msg("Operator logged in")

	return identity, nil
}

// Logout notifies the backend on a best-effort basis, then clears every
// identity entry regardless of the outcome. It returns the route to open next.
func (g *Guard) Logout(ctx context.Context) (string, error) {
	if token := g.session.Token(); token != "" && g.auth != nil {
		if err := g.auth.Logout(ctx, token); err != nil {
			g.logger.Warn().Err(err).Msg("Backend logout failed, clearing session anyway")
		}
	}

	if err := g.session.Clear(); err != nil {
		return access.RouteLogin, fmt.Errorf("failed to clear session: %w", err)
	}

	return access.RouteLogin, nil
}

// IsAuthInvalid reports whether err sends the operator back to login.
func IsAuthInvalid(err error) bool {
	return errors.Is(err, ErrAuthInvalid)
}

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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/carverauto/chargeradar/pkg/access"
	"github.com/carverauto/chargeradar/pkg/actions"
	"github.com/carverauto/chargeradar/pkg/backend"
	"github.com/carverauto/chargeradar/pkg/dashboard"
	"github.com/carverauto/chargeradar/pkg/guard"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/poller"
	"github.com/carverauto/chargeradar/pkg/session"
	"github.com/carverauto/chargeradar/pkg/telemetry"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var (
	errLoginRequired  = errors.New("not logged in, run the login command first")
	errLoginCancelled = errors.New("login cancelled")
)

// app holds what every subcommand shares.
type app struct {
	cfg     *dashboard.Config
	logger  logger.Logger
	session *session.Session
	client  *backend.Client
	guard   *guard.Guard
	stdout  io.Writer
	stderr  io.Writer
}

func newApp(cfg *dashboard.Config, log logger.Logger) (*app, error) {
	store, err := session.NewFileStore(cfg.SessionFile, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	sess := session.New(store)

	client, err := backend.New(backend.Config{
		BaseURL: cfg.APIBaseURL,
		Tokens:  sess,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	policy := access.NewPolicy()
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  log,
		session: sess,
		client:  client,
		guard:   guard.New(sess, policy, client, log),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

func (a *app) login(ctx context.Context) error {
	form := dashboard.NewLoginModel(ctx, a.guard.Login)

	if _, err := tea.NewProgram(form, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("login form failed: %w", err)
	}

	identity, ok := form.Identity()
	if !ok {
		return errLoginCancelled
	}

	a.logger.Info().Str("role", string(identity.Role)).Msg("Operator logged in")

	return nil
}

func (a *app) logout(ctx context.Context) error {
	next, err := a.guard.Logout(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Logged out. Open %s to sign in again.\n", next)

	return nil
}

// activate resolves the page for the interactive dashboard. Access denials
// fall back to the home view; a missing identity asks the operator to log in.
func (a *app) activate(path string) (*guard.PageContext, error) {
	page, err := a.requirePage(path)
	if err == nil || !errors.Is(err, guard.ErrAccessDenied) {
		return page, err
	}

	return a.guard.Activate(access.RouteHome)
}

// requirePage opens exactly path for a one-shot command. A redirect is
// reported and returned as its cause; the caller must not touch the backend.
func (a *app) requirePage(path string) (*guard.PageContext, error) {
	page, err := a.guard.Activate(path)
	if err == nil {
		return page, nil
	}

	redirect, ok := guard.AsRedirect(err)
	if !ok {
		return nil, err
	}

	fmt.Fprintf(a.stderr, "%s: redirecting to %s\n", redirect.Cause, redirect.Target)

	if redirect.Target == access.RouteLogin {
		return nil, errLoginRequired
	}

	return nil, redirect.Cause
}

func (a *app) runDashboard(ctx context.Context, path string) error {
	if path == "" {
		path = a.cfg.StartPath
	}

	page, err := a.activate(path)
	if err != nil {
		return err
	}

	if page == nil {
		return a.login(ctx)
	}

	if _, err := telemetry.InitializeMetrics(ctx, a.cfg.Metrics); err != nil && !errors.Is(err, telemetry.ErrMetricsDisabled) {
		a.logger.Warn().Err(err).Msg("Metrics exporter unavailable")
	}

	sink := dashboard.NewProgramSink()

	scheduler, err := poller.New(a.cfg.PollerConfig(), a.client, sink, poller.SystemClock{}, a.logger)
	if err != nil {
		return err
	}

	gateway := actions.New(a.client, scheduler, a.client, a.logger)

	model := dashboard.NewModel(&dashboard.Options{
		Context:   ctx,
		Page:      page,
		Actions:   gateway,
		Refresher: scheduler,
		Metering:  a.client,
		Location:  a.cfg.Location(),
		Logger:    a.logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	runCtx, cancel := context.WithCancel(ctx)

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		sink.Forward(gCtx, program)
		return nil
	})

	g.Go(func() error {
		if err := scheduler.Start(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})

	_, runErr := program.Run()

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()

	if err := scheduler.Stop(stopCtx); err != nil {
		a.logger.Warn().Err(err).Msg("Scheduler did not stop cleanly")
	}

	if err := g.Wait(); err != nil {
		a.logger.Error().Err(err).Msg("Background worker failed")
	}

	if err := telemetry.Shutdown(stopCtx); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to flush metrics")
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard exited: %w", runErr)
	}

	return nil
}

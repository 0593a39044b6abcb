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
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/carverauto/chargeradar/pkg/config"
	"github.com/carverauto/chargeradar/pkg/dashboard"
	"github.com/carverauto/chargeradar/pkg/lifecycle"
	"github.com/carverauto/chargeradar/pkg/version"
)

var (
	errFailedToLoadConfig = errors.New("failed to load config")
	errUnknownCommand     = errors.New("unknown command")
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("chargeradar-dashboard", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to dashboard config file (defaults are used when empty)")
	page := fs.String("page", "", "Console view to open, e.g. /chargers (defaults to start_path)")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [login|logout|config|device]\n\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println(version.GetFullVersion())

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	dashLogger, err := lifecycle.CreateComponentLogger("dashboard", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := newApp(cfg, dashLogger)
	if err != nil {
		return err
	}

	switch cmd := strings.ToLower(fs.Arg(0)); cmd {
	case "":
		return a.runDashboard(ctx, *page)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout(ctx)
	case "config":
		return a.configuration(ctx, fs.Args()[1:])
	case "device":
		return a.device(ctx, fs.Args()[1:])
	default:
		fs.Usage()

		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

// loadConfig reads path through the config loader. Without a path the
// defaults apply, unless CONFIG_SOURCE selects the environment.
func loadConfig(ctx context.Context, path string) (*dashboard.Config, error) {
	var cfg dashboard.Config

	if path == "" && !strings.EqualFold(os.Getenv("CONFIG_SOURCE"), "env") {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	if err := config.NewConfig(nil).LoadAndValidate(ctx, path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

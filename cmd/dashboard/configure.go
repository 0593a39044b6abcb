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
	"strings"
	"text/tabwriter"

	"github.com/carverauto/chargeradar/pkg/access"
	"github.com/carverauto/chargeradar/pkg/actions"
	"github.com/carverauto/chargeradar/pkg/models"
)

var (
	errUsageConfig  = errors.New("usage: config get <charge-point-id> [key...] | config set <charge-point-id> key=value...")
	errUsageDevice  = errors.New("usage: device <charge-point-id>")
	errBadSetting   = errors.New("setting must be key=value")
	errSettingsFail = errors.New("some settings were not applied")
)

// configuration reads or changes charger settings. Both need access to the
// settings view; changes also need an editable session.
func (a *app) configuration(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsageConfig
	}

	page, err := a.requirePage(access.RouteSettings)
	if err != nil {
		return err
	}

	gateway := actions.New(a.client, nil, a.client, a.logger)
	id := args[1]

	switch args[0] {
	case "get":
		resp, err := gateway.GetConfiguration(ctx, id, args[2:]...)
		if err != nil {
			return err
		}

		return printConfiguration(a.stdout, resp)
	case "set":
		settings, err := parseSettings(args[2:])
		if err != nil {
			return err
		}

		report, err := gateway.ApplySettings(ctx, page.Capability, id, settings)
		if err != nil {
			return err
		}

		printReport(a.stdout, report)

		if !report.OK() {
			return errSettingsFail
		}

		return nil
	default:
		return errUsageConfig
	}
}

func (a *app) device(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageDevice
	}

	if _, err := a.requirePage(access.RouteChargers); err != nil {
		return err
	}

	info, err := a.client.DeviceInfo(ctx, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Charge Point ID\t%s\n", info.ChargePointID)
	fmt.Fprintf(w, "Vendor\t%s\n", orNA(info.Vendor))
	fmt.Fprintf(w, "Model\t%s\n", orNA(info.Model))
	fmt.Fprintf(w, "Firmware\t%s\n", orNA(info.FirmwareVersion))

	return w.Flush()
}

func parseSettings(pairs []string) (map[string]string, error) {
	settings := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", errBadSetting, pair)
		}

		settings[strings.TrimSpace(key)] = value
	}

	return settings, nil
}

func printConfiguration(out io.Writer, resp *models.ConfigurationResponse) error {
	if !resp.Success && resp.Message != "" {
		fmt.Fprintf(out, "%s\n", resp.Message)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tREADONLY")

	for _, k := range resp.Configuration {
		value := ""
		if k.Value != nil {
			value = *k.Value
		}

		readonly := "-"
		if k.Readonly != nil {
			readonly = fmt.Sprintf("%t", *k.Readonly)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", k.Key, value, readonly)
	}

	return w.Flush()
}

func printReport(out io.Writer, report *actions.SettingsReport) {
	for _, key := range report.Applied {
		fmt.Fprintf(out, "applied  %s\n", key)
	}

	for _, f := range report.Failed {
		fmt.Fprintf(out, "failed   %s: %v\n", f.Key, f.Err)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}

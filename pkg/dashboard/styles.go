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

package dashboard

import (
	"github.com/carverauto/chargeradar/pkg/reconcile"
	"github.com/charmbracelet/lipgloss"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"

	appPadding = 2
)

type styles struct {
	title, heading, nav, help, hint, success, error, selected, dimmed, viewOnly, role, app, badges lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)).
			Bold(true),
		nav: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		dimmed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		viewOnly: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaOrange)).
			Padding(0, 1),
		role: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPurple)).
			Bold(true),
		app: lipgloss.NewStyle().
			Padding(1, appPadding).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Foreground(lipgloss.Color(draculaForeground)),
		badges: lipgloss.NewStyle().Padding(0, 1),
	}
}

// badge colors a status or availability badge by its reconciled class.
func (s *styles) badge(class, text string) string {
	color := draculaComment

	switch class {
	case "badge-online", "badge-available":
		color = draculaGreen
	case "badge-charging", "badge-preparing":
		color = draculaCyan
	case "badge-faulted", "badge-offline":
		color = draculaRed
	case "badge-unavailable":
		color = draculaOrange
	}

	return s.badges.Foreground(lipgloss.Color(color)).Render(text)
}

// row colors a charger line by its reconciled style class.
func (s *styles) row(styleClass string) lipgloss.Style {
	switch styleClass {
	case reconcile.StyleOffline:
		return s.dimmed
	case reconcile.StyleCharging:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	case reconcile.StyleFaulted:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaRed))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	}
}

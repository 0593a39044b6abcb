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

// Package dashboard renders the charger console in the terminal.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/carverauto/chargeradar/pkg/actions"
	"github.com/carverauto/chargeradar/pkg/guard"
	"github.com/carverauto/chargeradar/pkg/logger"
	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/carverauto/chargeradar/pkg/poller"
	"github.com/carverauto/chargeradar/pkg/viewmode"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	opStart = "start"
	opStop  = "stop"

	noMeterData = "No metering data available for this charger"
	wattsPerKW  = 1000
)

//nolint:gochecknoglobals // fixed control table
var (
	startControl = viewmode.Control{
		ID: "start-charging", Kind: viewmode.KindButton, Tags: []viewmode.Tag{viewmode.TagAction},
	}
	stopControl = viewmode.Control{
		ID: "stop-charging", Kind: viewmode.KindButton, Tags: []viewmode.Tag{viewmode.TagAction, viewmode.TagDestructive},
	}
	copyControl = viewmode.Control{ID: "copy-charger-id", Kind: viewmode.KindLink}
)

// Options configures a Model. Page and Actions are required.
type Options struct {
	Context   context.Context
	Page      *guard.PageContext
	Actions   Actions
	Refresher Refresher
	Metering  Metering
	Location  *time.Location
	Logger    logger.Logger
	// Copy writes to the clipboard. It defaults to the system clipboard.
	Copy func(string) error
}

type actionDoneMsg struct {
	op            string
	chargePointID string
	result        *models.ActionResult
	err           error
}

type meterMsg struct {
	chargePointID string
	value         *models.MeterValue
	err           error
}

type meterReading struct {
	chargePointID string
	value         *models.MeterValue
	err           error
}

// Model is the bubbletea model of the console. It only reads the view models
// it is sent and never mutates them.
type Model struct {
	ctx       context.Context
	page      *guard.PageContext
	actions   Actions
	refresher Refresher
	metering  Metering
	loc       *time.Location
	logger    logger.Logger
	copy      func(string) error
	enforcer  viewmode.Enforcer
	styles    styles
	spinner   spinner.Model

	vm         poller.ViewModel
	received   bool
	selected   int
	selectedID string
	busy       bool
	status     string
	statusErr  bool
	meter      *meterReading
	quitting   bool
}

var _ tea.Model = (*Model)(nil)

// NewModel returns the console model for an activated page.
func NewModel(opts *Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple))

	return &Model{
		ctx:       ctx,
		page:      opts.Page,
		actions:   opts.Actions,
		refresher: opts.Refresher,
		metering:  opts.Metering,
		loc:       loc,
		logger:    log,
		copy:      copyFn,
		styles:    newStyles(),
		spinner:   sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ViewModelMsg:
		m.applyViewModel(&msg.ViewModel)

		return m, nil
	case actionDoneMsg:
		m.finishAction(&msg)

		return m, nil
	case meterMsg:
		m.meter = &meterReading{chargePointID: msg.chargePointID, value: msg.value, err: msg.err}

		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true

		return m, tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "r":
		m.refresh()
	case "y":
		m.copySelected()
	case "s":
		return m, m.startSelected()
	case "x":
		return m, m.stopSelected()
	case "m":
		return m, m.loadMeter()
	}

	return m, nil
}

// applyViewModel keeps the selection on the same charger across publications.
func (m *Model) applyViewModel(vm *poller.ViewModel) {
	m.vm = *vm
	m.received = true

	if len(m.vm.Chargers) == 0 {
		m.selected = 0
		m.selectedID = ""

		return
	}

	for i := range m.vm.Chargers {
		if m.vm.Chargers[i].Record.ChargePointID == m.selectedID {
			m.selected = i

			return
		}
	}

	m.selected = min(max(m.selected, 0), len(m.vm.Chargers)-1)
	m.selectedID = m.vm.Chargers[m.selected].Record.ChargePointID
}

func (m *Model) move(delta int) {
	if len(m.vm.Chargers) == 0 {
		return
	}

	m.selected = min(max(m.selected+delta, 0), len(m.vm.Chargers)-1)
	m.selectedID = m.vm.Chargers[m.selected].Record.ChargePointID
}

// Selected returns the highlighted charger.
func (m *Model) Selected() (*models.ChargerView, bool) {
	if m.selected < 0 || m.selected >= len(m.vm.Chargers) {
		return nil, false
	}

	return &m.vm.Chargers[m.selected], true
}

// Status is the operator-facing result of the last command.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) refresh() {
	if m.refresher == nil {
		return
	}

	m.refresher.Refresh()
	m.setStatus("Refreshing...", false)
}

func (m *Model) copySelected() {
	view, ok := m.Selected()
	if !ok || !m.enforcer.Allows(m.page.Capability, copyControl) {
		return
	}

	id := view.Record.ChargePointID

	if err := m.copy(id); err != nil {
		m.logger.Debug().Err(err).Msg("Clipboard unavailable")
		m.setStatus("Failed to copy to clipboard", true)

		return
	}

	m.setStatus(fmt.Sprintf("Copied %s to clipboard", id), false)
}

// canStart and canStop combine the view-mode rule with the reconciled state.
func (m *Model) canStart(view *models.ChargerView) bool {
	return m.enforcer.Allows(m.page.Capability, startControl) && view.State.CanStart
}

func (m *Model) canStop(view *models.ChargerView) bool {
	return m.enforcer.Allows(m.page.Capability, stopControl) && view.State.CanStop
}

// startSelected returns nil, and makes no call, when a gate is closed.
func (m *Model) startSelected() tea.Cmd {
	view, ok := m.Selected()
	if !ok || m.busy || !m.canStart(view) {
		return nil
	}

	return m.runAction(opStart, view, m.actions.StartCharging)
}

func (m *Model) stopSelected() tea.Cmd {
	view, ok := m.Selected()
	if !ok || m.busy || !m.canStop(view) {
		return nil
	}

	return m.runAction(opStop, view, m.actions.StopCharging)
}

type actionFunc func(context.Context, viewmode.Capability, *models.ChargerView) (*models.ActionResult, error)

func (m *Model) runAction(op string, view *models.ChargerView, call actionFunc) tea.Cmd {
	target := *view
	id := target.Record.ChargePointID
	ctx := m.ctx
	capability := m.page.Capability

	m.busy = true
	m.setStatus(fmt.Sprintf("Sending %s to %s...", op, id), false)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := call(ctx, capability, &target)

		return actionDoneMsg{op: op, chargePointID: id, result: res, err: err}
	})
}

func (m *Model) finishAction(msg *actionDoneMsg) {
	m.busy = false

	if msg.err != nil {
		text := msg.err.Error()

		var actionErr *actions.ActionError
		if errors.As(msg.err, &actionErr) {
			text = actionErr.Message
		}

		m.logger.Warn().
			Err(msg.err).
			Str("op", msg.op).
			Str("charge_point_id", msg.chargePointID).
			Msg("Charger command failed")
		m.setStatus(fmt.Sprintf("Failed to %s charging on %s: %s", msg.op, msg.chargePointID, text), true)

		return
	}

	text := fmt.Sprintf("%s charging requested on %s", actionLabel(msg.op), msg.chargePointID)
	if msg.result != nil && msg.result.Message != "" {
		text = msg.result.Message
	}

	m.logger.Info().Str("op", msg.op).Str("charge_point_id", msg.chargePointID).Msg("Charger command accepted")
	m.setStatus(text, false)
}

func actionLabel(op string) string {
	if op == opStop {
		return "Stop"
	}

	return "Start"
}

func (m *Model) loadMeter() tea.Cmd {
	view, ok := m.Selected()
	if !ok || m.metering == nil {
		return nil
	}

	id := view.Record.ChargePointID
	ctx := m.ctx
	metering := m.metering

	return func() tea.Msg {
		mv, err := metering.LatestMeterValue(ctx, id)

		return meterMsg{chargePointID: id, value: mv, err: err}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderNav())
	content.WriteString("\n\n")
	content.WriteString(m.renderChargers())
	content.WriteString("\n")
	content.WriteString(m.renderSessions())
	content.WriteString("\n")
	content.WriteString(m.renderFaults())

	if meter := m.renderMeter(); meter != "" {
		content.WriteString("\n")
		content.WriteString(meter)
	}

	content.WriteString("\n")
	content.WriteString(m.renderStatus())
	content.WriteString("\n")
	content.WriteString(m.renderHelp())

	return m.styles.app.Align(lipgloss.Left).Render(content.String())
}

func (m *Model) renderHeader() string {
	parts := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple)).Render("⚡ "),
		m.styles.title.Render("ChargeRadar"),
		"  ",
		m.styles.role.Render("[" + m.page.RoleBadge + "]"),
	}

	if name := m.page.Identity.DisplayName; name != "" {
		parts = append(parts, " ", m.styles.nav.Render(name))
	}

	if text, ok := viewmode.Indicator(m.page.Capability); ok {
		parts = append(parts, "  ", m.styles.viewOnly.Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) renderNav() string {
	links := make([]string, 0, len(m.page.Nav)+1)

	for _, link := range m.page.Nav {
		if link.Path == m.page.Path {
			links = append(links, m.styles.selected.Render(link.Label))
		} else {
			links = append(links, m.styles.nav.Render(link.Label))
		}
	}

	links = append(links, m.styles.hint.Render(m.page.Support.Label))

	sections := make([]string, 0, len(m.page.Sections))
	for _, s := range m.page.Sections {
		sections = append(sections, string(s))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(links, m.styles.help.Render(" | ")),
		m.styles.help.Render("Sections: "+strings.Join(sections, " · ")),
	)
}

func (m *Model) renderPanel(title string, panel poller.Panel, rows func(b *strings.Builder)) string {
	var b strings.Builder

	b.WriteString(m.styles.heading.Render(title))
	b.WriteString("\n")

	if !m.received || !panel.HasRows() {
		switch panel.State {
		case poller.PanelError:
			b.WriteString(m.styles.error.Render(panel.Placeholder))
		case poller.PanelLoading:
			b.WriteString(m.spinner.View() + " " + m.styles.help.Render(poller.PlaceholderLoading))
		default:
			b.WriteString(m.styles.help.Render(panel.Placeholder))
		}

		b.WriteString("\n")

		return b.String()
	}

	rows(&b)

	return b.String()
}

func (m *Model) renderChargers() string {
	return m.renderPanel("Charger Status", m.vm.ChargersPanel, func(b *strings.Builder) {
		for i := range m.vm.Chargers {
			b.WriteString(m.renderCharger(i, &m.vm.Chargers[i]))
			b.WriteString("\n")
		}
	})
}

func (m *Model) renderCharger(i int, view *models.ChargerView) string {
	cursor := "  "
	if i == m.selected {
		cursor = m.styles.selected.Render("> ")
	}

	rec := &view.Record
	st := &view.State

	line := fmt.Sprintf("%-20s %s %s  Last Heartbeat: %s (%s)  Vendor: %s  Model: %s  Firmware: %s",
		rec.ChargePointID,
		m.styles.badge(st.StatusBadgeClass, st.StatusLabel),
		m.styles.badge(st.AvailabilityBadgeClass, st.AvailabilityLabel),
		formatOptional(rec.LastHeartbeat, m.loc, never),
		FormatAge(st.HeartbeatAgeSeconds),
		orNA(rec.Vendor),
		orNA(rec.Model),
		orNA(rec.FirmwareVersion),
	)

	var controls []string

	if m.canStart(view) {
		controls = append(controls, m.styles.success.Render("[s] Start Charging"))
	}

	if m.canStop(view) {
		controls = append(controls, m.styles.error.Render("[x] Stop Charging"))
	}

	if len(controls) > 0 {
		line += "  " + strings.Join(controls, " ")
	}

	return cursor + m.styles.row(st.StyleClass).Render(line)
}

func (m *Model) renderSessions() string {
	return m.renderPanel("Charging Sessions", m.vm.SessionsPanel, func(b *strings.Builder) {
		for i := range m.vm.Sessions {
			s := &m.vm.Sessions[i]
			fmt.Fprintf(b, "Transaction #%d  %s  Charger: %s  Start: %s  Stop: %s  Energy: %s\n",
				s.TransactionID,
				strings.ToUpper(s.Status),
				s.ChargePointID,
				FormatTimestamp(s.StartTime, m.loc),
				formatOptional(s.StopTime, m.loc, ongoing),
				formatEnergy(s.EnergyConsumed),
			)
		}
	})
}

func (m *Model) renderFaults() string {
	return m.renderPanel("Faults", m.vm.FaultsPanel, func(b *strings.Builder) {
		for i := range m.vm.Faults {
			f := &m.vm.Faults[i]

			line := fmt.Sprintf("%s  Charger: %s", FaultTypeName(f.FaultType), f.ChargePointID)
			if f.Message != nil && *f.Message != "" {
				line += "  " + *f.Message
			}

			line += "  " + FormatTimestamp(f.Timestamp, m.loc)

			if f.Cleared {
				b.WriteString(m.styles.dimmed.Render(line + "  CLEARED"))
			} else {
				b.WriteString(m.styles.hint.Render(line))
			}

			b.WriteString("\n")
		}
	})
}

// renderMeter shows the last reading fetched for the selected charger.
func (m *Model) renderMeter() string {
	if m.meter == nil || m.meter.chargePointID != m.selectedID {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.heading.Render("Metering: " + m.meter.chargePointID))
	b.WriteString("\n")

	if m.meter.err != nil || m.meter.value == nil {
		b.WriteString(m.styles.help.Render(noMeterData))
		b.WriteString("\n")

		return b.String()
	}

	mv := m.meter.value

	var powerKW *float64
	if mv.Power != nil {
		kw := *mv.Power / wattsPerKW
		powerKW = &kw
	}

	fmt.Fprintf(&b, "Voltage: %s  Current: %s  Power: %s  Total Energy: %s\n",
		formatReading(mv.Voltage, 1, "V"),
		formatReading(mv.Current, 2, "A"),
		formatReading(powerKW, 2, "kW"),
		formatReading(mv.TotalKWh, 2, "kWh"),
	)
	b.WriteString(m.styles.help.Render("Last Update: " + FormatTimestamp(mv.Timestamp, m.loc)))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}

	prefix := ""
	if m.busy {
		prefix = m.spinner.View() + " "
	}

	if m.statusErr {
		return m.styles.error.Render(m.status)
	}

	return prefix + m.styles.success.Render(m.status)
}

func (m *Model) renderHelp() string {
	items := []string{"↑/↓ select"}

	if m.enforcer.Allows(m.page.Capability, startControl) {
		items = append(items, "s start")
	}

	if m.enforcer.Allows(m.page.Capability, stopControl) {
		items = append(items, "x stop")
	}

	if m.refresher != nil {
		items = append(items, "r refresh")
	}

	items = append(items, "y copy id")

	if m.metering != nil {
		items = append(items, "m meter")
	}

	items = append(items, "q quit")

	return m.styles.help.Render(strings.Join(items, " | "))
}

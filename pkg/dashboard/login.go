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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/chargeradar/pkg/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldEmail    = 0
	fieldPassword = 1
	fieldCount    = 2

	inputWidth = 40
)

var errCredentialsRequired = errors.New("email and password are required")

// LoginFunc exchanges credentials for a persisted identity.
type LoginFunc func(ctx context.Context, email, password string) (*models.Identity, error)

type loginDoneMsg struct {
	identity *models.Identity
	err      error
}

// LoginModel is the staff login form.
type LoginModel struct {
	ctx        context.Context
	login      LoginFunc
	inputs     [fieldCount]textinput.Model
	focused    int
	submitting bool
	err        error
	identity   *models.Identity
	cancelled  bool
	spinner    spinner.Model
	styles     styles
}

var _ tea.Model = (*LoginModel)(nil)

// NewLoginModel returns a form that calls login on submit.
func NewLoginModel(ctx context.Context, login LoginFunc) *LoginModel {
	if ctx == nil {
		ctx = context.Background()
	}

	email := newInput("Email")
	email.Focus()

	password := newInput("Password")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple))

	return &LoginModel{
		ctx:     ctx,
		login:   login,
		inputs:  [fieldCount]textinput.Model{email, password},
		focused: fieldEmail,
		spinner: sp,
		styles:  newStyles(),
	}
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	return in
}

// Identity returns the logged-in identity once the form has succeeded.
func (m *LoginModel) Identity() (*models.Identity, bool) {
	return m.identity, m.identity != nil
}

// Cancelled reports whether the operator left the form without logging in.
func (m *LoginModel) Cancelled() bool {
	return m.cancelled
}

// Err is the last login failure shown on the form.
func (m *LoginModel) Err() error {
	return m.err
}

func (*LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return m.finish(msg)
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *LoginModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true

		return m, tea.Quit
	case tea.KeyEnter:
		if m.focused == fieldEmail {
			return m, m.focus(fieldPassword)
		}

		return m, m.submit()
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return m, m.focus((m.focused + 1) % fieldCount)
	default:
		if m.submitting {
			return m, nil
		}

		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

		return m, cmd
	}
}

func (m *LoginModel) focus(field int) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	m.focused = field

	return m.inputs[field].Focus()
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		m.err = errCredentialsRequired

		return nil
	}

	m.submitting = true
	m.err = nil

	ctx := m.ctx
	login := m.login

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		identity, err := login(ctx, email, password)

		return loginDoneMsg{identity: identity, err: err}
	})
}

func (m *LoginModel) finish(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		m.err = msg.err
		m.inputs[fieldPassword].SetValue("")

		return m, m.focus(fieldPassword)
	}

	m.identity = msg.identity

	return m, tea.Quit
}

func (m *LoginModel) View() string {
	var content strings.Builder

	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple)).Render("⚡ "),
		m.styles.title.Render("ChargeRadar Staff Login"),
	)

	content.WriteString(title + "\n\n")

	if m.identity != nil {
		content.WriteString(m.styles.success.Render(
			fmt.Sprintf("Logged in as %s (%s)", m.identity.DisplayName, strings.ToUpper(string(m.identity.Role)))))

		return m.styles.app.Align(lipgloss.Left).Render(content.String())
	}

	labels := [fieldCount]string{"Email:", "Password:"}
	for i := range m.inputs {
		label := m.styles.heading.Render(labels[i])
		if i != m.focused {
			label = m.styles.help.Render(labels[i])
		}

		content.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, m.inputs[i].View()))
		content.WriteString("\n\n")
	}

	if m.submitting {
		content.WriteString(m.spinner.View() + " " + m.styles.hint.Render("Signing in..."))
		content.WriteString("\n\n")
	}

	content.WriteString(m.styles.help.Render("Enter → next field / submit | Tab → switch field | Ctrl+C/Esc → quit"))

	if m.err != nil {
		content.WriteString("\n\n")
		content.WriteString(m.styles.error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return m.styles.app.Align(lipgloss.Left).Render(content.String())
}

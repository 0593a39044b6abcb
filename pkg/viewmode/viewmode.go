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

// Package viewmode decides which console controls a session may see and use.
// It is advisory: the backend rejects mutating calls on its own.
package viewmode

import "slices"

// IndicatorText is shown for the whole lifetime of a view-only session.
const IndicatorText = "VIEW ONLY"

// Kind is the widget type of a control.
type Kind string

const (
	KindButton   Kind = "button"
	KindLink     Kind = "link"
	KindInput    Kind = "input"
	KindSearch   Kind = "search"
	KindSelect   Kind = "select"
	KindTextArea Kind = "textarea"
	KindPanel    Kind = "panel"
)

// Tag classifies what a control does.
type Tag string

const (
	TagAdminOnly   Tag = "admin-only"
	TagDestructive Tag = "destructive"
	TagCreate      Tag = "create"
	TagEdit        Tag = "edit"
	TagToggle      Tag = "toggle"
	TagDelete      Tag = "delete"
	TagCRUD        Tag = "crud"
	TagAction      Tag = "action"
	TagSearch      Tag = "search"
	TagFilter      Tag = "filter"
)

//nolint:gochecknoglobals // fixed tag table
var mutatingTags = []Tag{
	TagAdminOnly, TagDestructive, TagCreate, TagEdit, TagToggle, TagDelete, TagCRUD, TagAction,
}

// Capability is the edit permission of a console session.
type Capability struct {
	Editable bool
}

// Control is a renderer element subject to view-mode rules.
type Control struct {
	ID   string
	Kind Kind
	Tags []Tag
}

// HasTag reports whether the control carries tag.
func (c Control) HasTag(tag Tag) bool {
	return slices.Contains(c.Tags, tag)
}

// Mutating reports whether the control can change backend or device state.
func (c Control) Mutating() bool {
	for _, t := range mutatingTags {
		if c.HasTag(t) {
			return true
		}
	}

	return false
}

// ControlState is how the renderer must present a control.
type ControlState struct {
	Control
	Visible     bool
	Interactive bool
	Dimmed      bool
}

// Enforcer applies view-mode rules. The zero value is ready to use.
type Enforcer struct{}

// Capability is editable for admins only.
func (Enforcer) Capability(isAdmin bool) Capability {
	return Capability{Editable: isAdmin}
}

// Apply returns one state per control, in input order.
func (e Enforcer) Apply(capability Capability, controls []Control) []ControlState {
	out := make([]ControlState, 0, len(controls))

	for _, c := range controls {
		out = append(out, e.State(capability, c))
	}

	return out
}

// State classifies a single control.
func (Enforcer) State(capability Capability, c Control) ControlState {
	state := ControlState{Control: c, Visible: true, Interactive: true}

	if capability.Editable {
		return state
	}

	if c.Mutating() {
		state.Visible = false
		state.Interactive = false

		return state
	}

	if lockedWhenViewOnly(c) {
		state.Interactive = false
		state.Dimmed = true
	}

	return state
}

// Allows reports whether the control may be used under capability.
func (e Enforcer) Allows(capability Capability, c Control) bool {
	s := e.State(capability, c)

	return s.Visible && s.Interactive
}

// Indicator returns the view-only badge text, and false for editable sessions.
func Indicator(capability Capability) (string, bool) {
	if capability.Editable {
		return "", false
	}

	return IndicatorText, true
}

// Form fields are frozen, except free-text search and list filters.
func lockedWhenViewOnly(c Control) bool {
	switch c.Kind {
	case KindInput:
		return !c.HasTag(TagSearch)
	case KindSelect:
		return !c.HasTag(TagFilter)
	case KindTextArea:
		return true
	case KindButton, KindLink, KindSearch, KindPanel:
		return false
	default:
		return false
	}
}

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

// Package access maps operator roles to the console views, navigation
// sections and links they may see.
package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/chargeradar/pkg/models"
)

// Console routes. Every view the console exposes must be listed in the
// universal set; RouteLogin is public and never consulted here.
const (
	RouteHome        = "/"
	RouteChargers    = "/chargers"
	RouteSessions    = "/sessions"
	RouteMetering    = "/metering"
	RouteFaults      = "/faults"
	RouteMaintenance = "/maintenance"
	RouteInvoice     = "/invoice"
	RouteSettings    = "/settings"
	RouteOperations  = "/operations"
	RouteAdmin       = "/admin"
	RouteMyTickets   = "/my-tickets"
	RouteLogin       = "/login"
	RouteStaffPortal = "/staff-portal"

	adminTicketsPath = "/admin?tab=tickets"
)

var (
	ErrUnmappedRoute       = errors.New("route is not in the route table")
	errRestrictedNotSubset = errors.New("restricted route is not in the universal set")
)

// Section is a navigation section title.
type Section string

const (
	SectionOverview       Section = "Overview"
	SectionChargers       Section = "Charger Management"
	SectionReports        Section = "Reports"
	SectionConfiguration  Section = "Configuration"
	SectionOperations     Section = "OCPP Operations"
	SectionAdministration Section = "Administration"
	SectionQuickActions   Section = "Quick Actions"
	SectionSupport        Section = "Support"
)

// NavLink is one entry of the console navigation.
type NavLink struct {
	Label string
	Path  string
}

//nolint:gochecknoglobals // immutable route tables
var (
	universalRoutes = []string{
		RouteHome, RouteChargers, RouteSessions, RouteMetering, RouteFaults, RouteMaintenance,
		RouteInvoice, RouteSettings, RouteOperations, RouteAdmin, RouteMyTickets,
	}

	restrictedRoutes = []string{RouteHome, RouteMyTickets}

	sectionCatalogue = []Section{
		SectionOverview, SectionChargers, SectionReports, SectionConfiguration,
		SectionOperations, SectionAdministration, SectionQuickActions, SectionSupport,
	}

	// Tokens are matched in order as case-insensitive substrings. A new
	// section whose title contains any of them stays hidden for non-admins.
	sectionDenylist = []string{
		"administration",
		"quick actions",
		"charger",
		"report",
		"configuration",
		"operations",
		"management",
	}

	defaultNav = []NavLink{
		{Label: "Dashboard", Path: RouteHome},
		{Label: "Charger Status", Path: RouteChargers},
		{Label: "Sessions", Path: RouteSessions},
		{Label: "Metering", Path: RouteMetering},
		{Label: "Faults", Path: RouteFaults},
		{Label: "Maintenance", Path: RouteMaintenance},
		{Label: "Invoice & Reports", Path: RouteInvoice},
		{Label: "Configuration", Path: RouteSettings},
		{Label: "OCPP Operations", Path: RouteOperations},
		{Label: "Staff Portal", Path: RouteStaffPortal},
	}
)

// Policy is an immutable role to route mapping. Admins reach the universal
// set; every other role, recognised or not, reaches the restricted set.
type Policy struct {
	universal  map[string]struct{}
	restricted map[string]struct{}
}

// NewPolicy returns the console's route policy.
func NewPolicy() *Policy {
	return NewPolicyFromRoutes(universalRoutes, restrictedRoutes)
}

// NewPolicyFromRoutes builds a policy from explicit route lists. Call
// Validate before using a policy assembled this way.
func NewPolicyFromRoutes(universal, restricted []string) *Policy {
	p := &Policy{
		universal:  make(map[string]struct{}, len(universal)),
		restricted: make(map[string]struct{}, len(restricted)),
	}

	for _, r := range universal {
		p.universal[CleanPath(r)] = struct{}{}
	}

	for _, r := range restricted {
		p.restricted[CleanPath(r)] = struct{}{}
	}

	return p
}

// Validate checks that every restricted route is also in the universal set.
func (p *Policy) Validate() error {
	for r := range p.restricted {
		if _, ok := p.universal[r]; !ok {
			return fmt.Errorf("%w: %s", errRestrictedNotSubset, r)
		}
	}

	return nil
}

// Known reports whether path is in the route table.
func (p *Policy) Known(path string) bool {
	_, ok := p.universal[CleanPath(path)]

	return ok
}

// IsAllowed reports whether role may open path. Unmapped paths are denied for
// every role.
func (p *Policy) IsAllowed(role models.Role, path string) bool {
	clean := CleanPath(path)

	if _, ok := p.universal[clean]; !ok {
		return false
	}

	if role.IsAdmin() {
		return true
	}

	_, ok := p.restricted[clean]

	return ok
}

// Check is IsAllowed with an error that tells a route-table defect apart
// from an ordinary denial.
func (p *Policy) Check(role models.Role, path string) (bool, error) {
	if !p.Known(path) {
		return false, fmt.Errorf("%w: %s", ErrUnmappedRoute, CleanPath(path))
	}

	return p.IsAllowed(role, path), nil
}

// VisibleSections returns the catalogue sections role may see, in catalogue order.
func (*Policy) VisibleSections(role models.Role) []Section {
	out := make([]Section, 0, len(sectionCatalogue))

	for _, s := range sectionCatalogue {
		if role.IsAdmin() || !denied(string(s)) {
			out = append(out, s)
		}
	}

	return out
}

// FilterSections applies the section denylist to arbitrary titles.
func (*Policy) FilterSections(role models.Role, titles []string) []string {
	if role.IsAdmin() {
		return append([]string(nil), titles...)
	}

	out := make([]string, 0, len(titles))

	for _, t := range titles {
		if !denied(t) {
			out = append(out, t)
		}
	}

	return out
}

// FilterNav hides links role may not follow. The deprecated staff portal
// link is hidden for everyone.
func (p *Policy) FilterNav(role models.Role, links []NavLink) []NavLink {
	out := make([]NavLink, 0, len(links))

	for _, l := range links {
		path := CleanPath(l.Path)

		if path == RouteStaffPortal {
			continue
		}

		if !role.IsAdmin() && !p.IsAllowed(role, path) {
			continue
		}

		out = append(out, l)
	}

	return out
}

// DefaultNav returns a copy of the console's main navigation.
func DefaultNav() []NavLink {
	return append([]NavLink(nil), defaultNav...)
}

// SupportLink is where the Support section's ticket link points.
func SupportLink(isAdmin bool) NavLink {
	if isAdmin {
		return NavLink{Label: "My Tickets", Path: adminTicketsPath}
	}

	return NavLink{Label: "My Tickets", Path: RouteMyTickets}
}

// RoleBadge is the label shown next to the operator's name.
func RoleBadge(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "ADMIN"
	case models.RoleManager:
		return "MANAGER"
	default:
		return "STAFF"
	}
}

// CleanPath drops any query string or fragment and a trailing slash.
func CleanPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	path = strings.TrimSpace(path)

	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	if path == "" {
		return RouteHome
	}

	return path
}

func denied(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))

	for _, token := range sectionDenylist {
		if strings.Contains(lower, token) {
			return true
		}
	}

	return false
}

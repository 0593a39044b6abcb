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

package models

import "strings"

// Role governs which views and actions a console operator may use.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// IsAdmin reports whether the role has full access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Known reports whether r is one of the roles issued by the backend.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	default:
		return false
	}
}

type Department string

const (
	DepartmentIT              Department = "IT"
	DepartmentFinance         Department = "Finance"
	DepartmentOperations      Department = "Operations"
	DepartmentCustomerService Department = "Customer Service"
	DepartmentMarketing       Department = "Marketing"
)

// StaffInfo is the profile persisted next to the token after login.
type StaffInfo struct {
	ID         int64      `json:"id,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Department Department `json:"department"`
	Role       Role       `json:"role"`
}

// Identity is the authenticated operator for the lifetime of a console session.
// Token and Role are always both set; a partial identity is never constructed.
type Identity struct {
	Token       string
	Role        Role
	Department  Department
	DisplayName string
	Email       string
}

// NewIdentity builds an Identity from a token and its persisted profile. It
// returns false when either half is missing.
func NewIdentity(token string, info *StaffInfo) (*Identity, bool) {
	if strings.TrimSpace(token) == "" || info == nil || strings.TrimSpace(string(info.Role)) == "" {
		return nil, false
	}

	return &Identity{
		Token:       token,
		Role:        info.Role,
		Department:  info.Department,
		DisplayName: info.Name,
		Email:       info.Email,
	}, true
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role.IsAdmin()
}

// StaffLoginRequest is the body of POST /api/staff/login.
type StaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffLoginResponse is returned by POST /api/staff/login.
type StaffLoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	Staff   StaffInfo `json:"staff"`
}

// LogoutRequest is the body of POST /api/staff/logout.
type LogoutRequest struct {
	Token string `json:"token"`
}

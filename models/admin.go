// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AdminSlot is the fixed primary key of the one administrator record.
// Seeding and credential rotation always target this key, so the database
// primary key constraint guarantees that at most one administrator exists.
const AdminSlot int64 = 1

// Admin is the single operator account of the portfolio.
// PasswordHash holds a bcrypt digest and must never leave the server.
type Admin struct {
	// ID is always [AdminSlot].
	ID int64 `json:"-"`

	// Username is the login name of the administrator.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the administrator password.
	PasswordHash string `json:"-"`

	// SessionVersion is incremented on every credential rotation. Issued
	// tokens carry the version they were minted with; tokens with a stale
	// version are rejected.
	SessionVersion int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}

// Credentials is the login payload submitted to the session issuer.
type Credentials struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// CredentialsUpdate is the payload of the credential rotation operation.
// Empty fields are left untouched; at least one must be set.
type CredentialsUpdate struct {
	NewUsername string `json:"newUsername,omitempty"`
	NewPassword string `json:"newPassword,omitempty"`
}

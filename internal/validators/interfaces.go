// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming posts, projects, resume documents and
// admin credentials before the service layer stores them. The service
// layer folds every sentinel returned here into its own validation error.
package validators

import "context"

// Validator rejects a document that breaks the content rules. The optional
// field names narrow the check to those fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}

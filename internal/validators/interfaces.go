// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks item payloads against the column limits of the
// item table before they reach a repository. SQLite does not enforce
// VARCHAR widths, so the rules live here rather than in the schema alone.
package validators

import "context"

// Validator checks obj. fields restricts the check to the named field
// rules; with none given, every rule for the type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

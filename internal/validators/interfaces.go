// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sales and sync batches before they reach a
// store.
//
// A [Validator] accepts any supported value and an optional list of field
// names; with no fields the full rule set for that type is applied. Both
// binaries share the rules, so the terminal rejects exactly what the
// backend would.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

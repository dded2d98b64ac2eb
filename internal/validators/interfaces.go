// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain values before they reach the
// cryptography service and the store.
//
// A Validator accepts the value and an optional list of field names. With
// no fields it applies the default rule set for the value's type; with
// fields it checks only those, which lets callers relax rules (for example,
// allowing an empty display name for items that come from remote sync).
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates obj, restricted to fields when any are given.
	Validate(ctx context.Context, obj any, fields ...string) error
}

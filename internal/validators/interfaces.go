// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input and model output before it reaches the
// services.
//
// Two kinds of checks live here:
//   - Validator implementations (documents, credentials) reject bad input
//     with sentinel errors. Validation may be scoped to named fields.
//   - ParseQuiz decodes model output into a quiz and reports, without
//     erroring, whether it satisfies the quiz schema.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integration with the hosted
// text-generation API.
//
// The primary abstraction is [TextGenerator]. Its contract is that it never
// fails: every transport, status or decoding problem is logged and replaced
// by a fallback text, and the reason is reported in [models.Generation].
package adapter

import (
	"context"

	"github.com/MKhiriev/levelup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/text_generator_mock.go -package=mock

// TextGenerator sends free-form prompts to a generative-text model.
type TextGenerator interface {
	// Generate sends prompt and returns the model text or a fallback.
	// A blank prompt is answered with the general fallback without a request.
	Generate(ctx context.Context, prompt string) models.Generation

	// GetAIResponse is Generate reduced to its text.
	GetAIResponse(ctx context.Context, prompt string) string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// levelup HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgStorageQuotaExceeded is returned when the document collection could
	// not be rewritten because the backend ran out of space.
	MsgStorageQuotaExceeded = "storage quota exceeded"

	// MsgRateLimitExceeded is returned with 429 when a client exhausted its
	// AI request bucket.
	MsgRateLimitExceeded = "rate limit exceeded"
)

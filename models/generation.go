// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FallbackReason tells why a generation returned a fallback text.
type FallbackReason string

const (
	// ReasonNone marks a successful generation.
	ReasonNone FallbackReason = ""
	// ReasonEmptyPrompt is used when the prompt was blank and no request was sent.
	ReasonEmptyPrompt FallbackReason = "empty_prompt"
	// ReasonTransport is used when the request could not be completed.
	ReasonTransport FallbackReason = "transport"
	// ReasonBadStatus is used when the endpoint answered with a non-2xx status.
	ReasonBadStatus FallbackReason = "bad_status"
	// ReasonUnparseableBody is used when a 2xx body is not valid JSON.
	ReasonUnparseableBody FallbackReason = "unparseable_body"
	// ReasonMissingText is used when the response envelope has no text part.
	ReasonMissingText FallbackReason = "missing_text"
)

// Generation is the result of a text-generation call. Text is always
// non-empty: either the model output or a fallback string.
type Generation struct {
	Text     string         `json:"text"`
	Fallback bool           `json:"fallback"`
	Reason   FallbackReason `json:"reason,omitempty"`
}

// Generated wraps model output into a successful [Generation].
func Generated(text string) Generation {
	return Generation{Text: text}
}

// FallbackGeneration builds a [Generation] carrying a fallback text.
func FallbackGeneration(text string, reason FallbackReason) Generation {
	return Generation{Text: text, Fallback: true, Reason: reason}
}

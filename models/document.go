// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentType classifies a saved item in the library.
type DocumentType string

const (
	// Note is a free-form note written by the user or produced by OCR.
	Note DocumentType = "note"
	// Doc is a longer document, e.g. a generated study plan or summary.
	Doc DocumentType = "document"
	// QuizRecord is a stored quiz attempt with its score and feedback.
	QuizRecord DocumentType = "quiz"
)

// IsValid reports whether t is one of the known document types.
func (t DocumentType) IsValid() bool {
	switch t {
	case Note, Doc, QuizRecord:
		return true
	default:
		return false
	}
}

// Document is a persisted unit of work product. The whole collection of
// documents lives in a single storage slot and is rewritten on every mutation.
type Document struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	// Title and Content are stored trimmed and are never empty.
	Title   string `json:"title"`
	Content string `json:"content"`

	// Type is fixed at creation.
	Type DocumentType `json:"type"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`

	// LastModified is set at creation and refreshed on every update.
	LastModified time.Time `json:"lastModified"`

	// Tags keeps the caller's order. Duplicates are allowed.
	Tags []string `json:"tags"`
}

// DocumentUpdate is a partial update of a [Document]. Nil fields are left
// unchanged. ID, Type and CreatedAt cannot be updated.
type DocumentUpdate struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

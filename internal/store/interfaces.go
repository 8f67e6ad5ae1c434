// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/levelup/models"
)

// SlotStorage is a key-value store holding one opaque payload per slot.
// Set replaces the payload as a whole.
type SlotStorage interface {
	// Get returns the payload stored in slot or [ErrSlotNotFound].
	Get(ctx context.Context, slot string) ([]byte, error)
	// Set replaces the payload of slot. Failures caused by exhausted space
	// match [ErrQuotaExceeded].
	Set(ctx context.Context, slot string, payload []byte) error
}

// DocumentRepository loads and stores the whole document collection.
type DocumentRepository interface {
	// Load returns the stored collection. An absent or undecodable
	// collection yields an empty slice and no error.
	Load(ctx context.Context) ([]models.Document, error)
	// Store rewrites the whole collection.
	Store(ctx context.Context, docs []models.Document) error
}

// UserRepository is the stub user store.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

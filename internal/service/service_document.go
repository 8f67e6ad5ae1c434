// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
)

// documentService is the concrete implementation of DocumentService. Inputs
// are assumed to be validated; see documentValidationService.
//
// Every mutation loads the whole collection, changes it and stores it back.
// mu serialises these cycles within one process. Processes sharing a slot are
// not coordinated and the last write wins.
type documentService struct {
	mu sync.Mutex

	repository  store.DocumentRepository
	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewDocumentService(repository store.DocumentRepository, idGenerator utils.IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		repository:  repository,
		idGenerator: idGenerator,
		now:         time.Now,
		logger:      logger,
	}
}

// Save appends a new document with a fresh id. CreatedAt and LastModified
// are set to the same instant.
func (s *documentService) Save(ctx context.Context, title, content string, docType models.DocumentType, tags ...string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repository.Load(ctx)
	if err != nil {
		return models.Document{}, fmt.Errorf("error loading documents before save: %w", err)
	}

	now := s.timestamp()
	doc := models.Document{
		ID:           s.idGenerator.Generate(),
		Title:        strings.TrimSpace(title),
		Content:      strings.TrimSpace(content),
		Type:         docType,
		CreatedAt:    now,
		LastModified: now,
		Tags:         normalizeTags(tags),
	}

	if err = s.repository.Store(ctx, append(docs, doc)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.Save").Msg("error saving document")
		return models.Document{}, fmt.Errorf("error saving document: %w", err)
	}

	return doc, nil
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading documents: %w", err)
	}

	return docs, nil
}

// Update merges the set fields of update into the document with id and
// refreshes its LastModified. ID, Type and CreatedAt never change.
func (s *documentService) Update(ctx context.Context, id string, update models.DocumentUpdate) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repository.Load(ctx)
	if err != nil {
		return models.Document{}, fmt.Errorf("error loading documents before update: %w", err)
	}

	idx := slices.IndexFunc(docs, func(d models.Document) bool { return d.ID == id })
	if idx < 0 {
		return models.Document{}, ErrDocumentNotFound
	}

	doc := docs[idx]
	if update.Title != nil {
		doc.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		doc.Content = strings.TrimSpace(*update.Content)
	}
	if update.Tags != nil {
		doc.Tags = normalizeTags(update.Tags)
	}
	doc.LastModified = s.timestamp()
	docs[idx] = doc

	if err = s.repository.Store(ctx, docs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.Update").Str("id", id).Msg("error updating document")
		return models.Document{}, fmt.Errorf("error updating document: %w", err)
	}

	return doc, nil
}

// Delete removes the document with id. An unknown id is not an error; the
// collection is rewritten either way.
func (s *documentService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repository.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading documents before delete: %w", err)
	}

	docs = slices.DeleteFunc(docs, func(d models.Document) bool { return d.ID == id })

	if err = s.repository.Store(ctx, docs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentService.Delete").Str("id", id).Msg("error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}

	return nil
}

// timestamp is millisecond precise and in UTC so that values survive the
// JSON round trip unchanged.
func (s *documentService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// normalizeTags trims every tag and drops empty ones. Order and duplicates
// are kept. The result is never nil.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}

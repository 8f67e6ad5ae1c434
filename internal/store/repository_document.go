package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/metrics"
	"github.com/MKhiriev/levelup/models"
)

// documentRepository stores the whole collection as one JSON array in a
// single slot.
type documentRepository struct {
	storage SlotStorage
	slot    string
	logger  *logger.Logger
}

// NewDocumentRepository returns a [DocumentRepository] keeping the collection
// in slot of storage.
func NewDocumentRepository(storage SlotStorage, slot string, log *logger.Logger) DocumentRepository {
	log.Debug().Str("slot", slot).Msg("creating document repository")
	return &documentRepository{
		storage: storage,
		slot:    slot,
		logger:  log,
	}
}

// Load reads and decodes the collection. A slot that was never written or
// holds undecodable data yields an empty collection; backend failures are
// wrapped in [ErrStorageRead].
func (r *documentRepository) Load(ctx context.Context) ([]models.Document, error) {
	payload, err := r.storage.Get(ctx, r.slot)
	if errors.Is(err, ErrSlotNotFound) {
		return []models.Document{}, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*documentRepository.Load").Msg("error reading document collection")
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	var docs []models.Document
	if err = json.Unmarshal(payload, &docs); err != nil {
		r.logger.Warn().Err(err).Str("func", "*documentRepository.Load").Msg("stored document collection is corrupt, treating as empty")
		return []models.Document{}, nil
	}
	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// Store encodes docs and replaces the collection. Backend failures are
// wrapped in [ErrStorageWrite] and keep matching [ErrQuotaExceeded].
func (r *documentRepository) Store(ctx context.Context, docs []models.Document) error {
	if docs == nil {
		docs = []models.Document{}
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		metrics.StorageWrites.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: error encoding collection: %w", ErrStorageWrite, err)
	}

	if err = r.storage.Set(ctx, r.slot, payload); err != nil {
		r.logger.Err(err).Str("func", "*documentRepository.Store").Int("documents", len(docs)).Msg("error writing document collection")

		result := "error"
		if errors.Is(err, ErrQuotaExceeded) {
			result = "quota_exceeded"
		}
		metrics.StorageWrites.WithLabelValues(result).Inc()

		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	metrics.StorageWrites.WithLabelValues("ok").Inc()
	return nil
}

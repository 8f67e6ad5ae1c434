package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/mock"
	"github.com/MKhiriev/levelup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSlot = "levelup_documents"

func sampleDocuments() []models.Document {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []models.Document{
		{
			ID:           "a",
			Title:        "Biology",
			Content:      "Cells",
			Type:         models.Note,
			CreatedAt:    created,
			LastModified: created,
			Tags:         []string{"science"},
		},
		{
			ID:           "b",
			Title:        "Plan",
			Content:      "Day 1",
			Type:         models.Doc,
			CreatedAt:    created.Add(time.Hour),
			LastModified: created.Add(2 * time.Hour),
			Tags:         []string{},
		},
	}
}

func TestDocumentRepository_LoadEmptySlot(t *testing.T) {
	repo := NewDocumentRepository(NewMemorySlotStorage(), testSlot, logger.Nop())

	docs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDocumentRepository_RoundTrip(t *testing.T) {
	repo := NewDocumentRepository(NewMemorySlotStorage(), testSlot, logger.Nop())
	ctx := context.Background()

	want := sampleDocuments()
	require.NoError(t, repo.Store(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].LastModified.Equal(got[i].LastModified))
		assert.Equal(t, want[i].Tags, got[i].Tags)
	}
}

func TestDocumentRepository_StoredFormat(t *testing.T) {
	storage := NewMemorySlotStorage()
	repo := NewDocumentRepository(storage, testSlot, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, sampleDocuments()[:1]))

	raw, err := storage.Get(ctx, testSlot)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "2026-03-01T10:00:00Z", decoded[0]["createdAt"])
	assert.Equal(t, "note", decoded[0]["type"])
}

func TestDocumentRepository_StoreNilWritesEmptyArray(t *testing.T) {
	storage := NewMemorySlotStorage()
	repo := NewDocumentRepository(storage, testSlot, logger.Nop())

	require.NoError(t, repo.Store(context.Background(), nil))

	raw, err := storage.Get(context.Background(), testSlot)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDocumentRepository_LoadCorrupt(t *testing.T) {
	for _, payload := range []string{"not json", `{"id":"1"}`, `null`} {
		t.Run(payload, func(t *testing.T) {
			storage := NewMemorySlotStorage()
			require.NoError(t, storage.Set(context.Background(), testSlot, []byte(payload)))

			docs, err := NewDocumentRepository(storage, testSlot, logger.Nop()).Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, docs)
			assert.Empty(t, docs)
		})
	}
}

func TestDocumentRepository_LoadBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSlotStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), testSlot).Return(nil, errors.New("connection refused"))

	_, err := NewDocumentRepository(storage, testSlot, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrStorageRead)
}

func TestDocumentRepository_StoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		setErr    error
		wantQuota bool
	}{
		{name: "generic", setErr: errors.New("disk on fire")},
		{name: "quota", setErr: errors.Join(ErrQuotaExceeded, errors.New("SQLITE_FULL")), wantQuota: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockSlotStorage(ctrl)
			storage.EXPECT().Set(gomock.Any(), testSlot, gomock.Any()).Return(tt.setErr)

			err := NewDocumentRepository(storage, testSlot, logger.Nop()).Store(context.Background(), sampleDocuments())
			assert.ErrorIs(t, err, ErrStorageWrite)
			assert.Equal(t, tt.wantQuota, errors.Is(err, ErrQuotaExceeded))
		})
	}
}

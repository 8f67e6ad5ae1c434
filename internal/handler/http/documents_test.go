package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/levelup/internal/service"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDocument() models.Document {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	return models.Document{
		ID:           "doc-1",
		Title:        "Title",
		Content:      "Content",
		Type:         models.Note,
		CreatedAt:    now,
		LastModified: now,
		Tags:         []string{"exam"},
	}
}

func TestListDocuments(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().List(gomock.Any()).Return([]models.Document{testDocument()}, nil)

	rec := serve(t, h, http.MethodGet, "/api/documents/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.Document{testDocument()}, decodeResponse[[]models.Document](t, rec))
}

func TestListDocuments_Empty(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().List(gomock.Any()).Return([]models.Document{}, nil)

	rec := serve(t, h, http.MethodGet, "/api/documents/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDocuments_TypeFilter(t *testing.T) {
	note := testDocument()
	doc := testDocument()
	doc.ID, doc.Type = "doc-2", models.Doc
	quiz := testDocument()
	quiz.ID, quiz.Type = "doc-3", models.QuizRecord

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "no filter", query: "", wantIDs: []string{"doc-1", "doc-2", "doc-3"}},
		{name: "all", query: "?type=all", wantIDs: []string{"doc-1", "doc-2", "doc-3"}},
		{name: "notes", query: "?type=note", wantIDs: []string{"doc-1"}},
		{name: "documents", query: "?type=document", wantIDs: []string{"doc-2"}},
		{name: "quizzes", query: "?type=quiz", wantIDs: []string{"doc-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.documents.EXPECT().List(gomock.Any()).Return([]models.Document{note, doc, quiz}, nil)

			rec := serve(t, h, http.MethodGet, "/api/documents/"+tt.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			ids := make([]string, 0)
			for _, d := range decodeResponse[[]models.Document](t, rec) {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListDocuments_TypeFilterNoMatch(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().List(gomock.Any()).Return([]models.Document{testDocument()}, nil)

	rec := serve(t, h, http.MethodGet, "/api/documents/?type=quiz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDocuments_UnknownType(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/api/documents/?type=flashcard", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validators.ErrInvalidDocumentType.Error(), decodeResponse[utils.ErrorResponse](t, rec).Error)
}

func TestListDocuments_ReadFailure(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("error loading documents: %w", service.ErrStorageRead))

	rec := serve(t, h, http.MethodGet, "/api/documents/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeResponse[utils.ErrorResponse](t, rec).Error)
}

func TestSaveDocument(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().Save(gomock.Any(), "Title", "Content", models.Note, "exam").Return(testDocument(), nil)

	rec := serve(t, h, http.MethodPost, "/api/documents/", models.SaveDocumentRequest{
		Title: "Title", Content: "Content", Type: models.Note, Tags: []string{"exam"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testDocument(), decodeResponse[models.Document](t, rec))
}

func TestSaveDocument_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrEmptyTitle),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "quota",
			err:        fmt.Errorf("error saving document: %w", errors.Join(service.ErrStorageWrite, service.ErrStorageQuotaExceeded)),
			wantStatus: http.StatusInsufficientStorage,
		},
		{
			name:       "write",
			err:        fmt.Errorf("error saving document: %w", service.ErrStorageWrite),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.documents.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Document{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/documents/", models.SaveDocumentRequest{Title: "", Content: "x", Type: models.Note})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSaveDocument_ValidationMessage(t *testing.T) {
	h, ts := newTestHandler(t)
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrEmptyTitle)
	ts.documents.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Document{}, err)

	rec := serve(t, h, http.MethodPost, "/api/documents/", models.SaveDocumentRequest{Content: "x", Type: models.Note})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, err.Error(), decodeResponse[utils.ErrorResponse](t, rec).Error)
}

func TestUpdateDocument(t *testing.T) {
	h, ts := newTestHandler(t)
	updated := testDocument()
	updated.Title = "New"

	ts.documents.EXPECT().Update(gomock.Any(), "doc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.DocumentUpdate) (models.Document, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "New", *update.Title)
			assert.Nil(t, update.Content)
			return updated, nil
		})

	rec := serve(t, h, http.MethodPatch, "/api/documents/doc-1", `{"title":"New"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New", decodeResponse[models.Document](t, rec).Title)
}

func TestUpdateDocument_NotFound(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(models.Document{}, service.ErrDocumentNotFound)

	rec := serve(t, h, http.MethodPatch, "/api/documents/missing", `{"title":"New"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrDocumentNotFound.Error(), decodeResponse[utils.ErrorResponse](t, rec).Error)
}

func TestDeleteDocument(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().Delete(gomock.Any(), "doc-1").Return(nil)

	rec := serve(t, h, http.MethodDelete, "/api/documents/doc-1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteDocument_StorageFailure(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.documents.EXPECT().Delete(gomock.Any(), "doc-1").Return(service.ErrStorageWrite)

	rec := serve(t, h, http.MethodDelete, "/api/documents/doc-1", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

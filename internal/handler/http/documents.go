// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
	"github.com/go-chi/chi/v5"
)

// allDocumentTypes disables the ?type= filter.
const allDocumentTypes = "all"

// listDocuments returns the library, optionally narrowed to one document
// type with ?type=note|document|quiz.
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docType := models.DocumentType(r.URL.Query().Get("type"))
	if docType == allDocumentTypes {
		docType = ""
	}
	if docType != "" && !docType.IsValid() {
		logger.FromRequest(r).Warn().Str("func", "*Handler.listDocuments").Str("type", string(docType)).Msg("unknown document type filter")
		utils.WriteError(w, validators.ErrInvalidDocumentType.Error(), http.StatusBadRequest)
		return
	}

	docs, err := h.services.DocumentService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.listDocuments", "error listing documents")
		return
	}

	if docType != "" {
		docs = slices.DeleteFunc(docs, func(d models.Document) bool { return d.Type != docType })
	}

	utils.WriteJSON(w, docs, http.StatusOK)
}

func (h *Handler) saveDocument(w http.ResponseWriter, r *http.Request) {
	var req models.SaveDocumentRequest
	if !h.decode(w, r, &req, "*Handler.saveDocument") {
		return
	}

	doc, err := h.services.DocumentService.Save(r.Context(), req.Title, req.Content, req.Type, req.Tags...)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.saveDocument", "error saving document")
		return
	}

	utils.WriteJSON(w, doc, http.StatusCreated)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update models.DocumentUpdate
	if !h.decode(w, r, &update, "*Handler.updateDocument") {
		return
	}

	doc, err := h.services.DocumentService.Update(r.Context(), id, update)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.updateDocument", "error updating document")
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "*Handler.deleteDocument", "error deleting document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

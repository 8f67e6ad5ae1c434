package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/levelup/internal/app"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/service"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/utils"
)

// errorStatuses is checked in order; the first match wins. A quota failure
// also matches ErrStorageWrite, so it comes first.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrDocumentNotFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrStorageQuotaExceeded, http.StatusInsufficientStorage},
	{service.ErrStorageWrite, http.StatusInternalServerError},
	{service.ErrStorageRead, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus hides internal error details from 5xx responses.
func messageFromStatus(err error, status int) string {
	switch status {
	case http.StatusUnauthorized:
		return app.MsgInvalidLoginPassword
	case http.StatusInsufficientStorage:
		return app.MsgStorageQuotaExceeded
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeServiceError logs err and answers with the mapped status.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Msg(msg)
	utils.WriteError(w, messageFromStatus(err, status), status)
}

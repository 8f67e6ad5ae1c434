package http

import (
	"net/http"

	"github.com/MKhiriev/levelup/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppBuildInfo(r.Context()), http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !h.decode(w, r, &creds, "*Handler.register") {
		return
	}

	user, err := h.services.UserService.AddUser(r.Context(), creds)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.register", "error registering user")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !h.decode(w, r, &creds, "*Handler.login") {
		return
	}

	user, err := h.services.UserService.SignIn(r.Context(), creds)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.login", "no user was found/wrong password")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

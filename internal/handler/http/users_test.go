package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/levelup/internal/service"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/utils"
	"github.com/MKhiriev/levelup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	h, ts := newTestHandler(t)
	creds := models.Credentials{Email: "ada@example.com", Password: "secret"}
	ts.users.EXPECT().AddUser(gomock.Any(), creds).
		Return(models.User{ID: "u-1", Email: "ada@example.com", Password: "secret"}, nil)

	rec := serve(t, h, http.MethodPost, "/api/users/register", creds)

	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeResponse[models.User](t, rec)
	assert.Equal(t, "u-1", user.ID)
	assert.Empty(t, user.Password)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.users.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/users/register", models.Credentials{Email: "a@b.c", Password: "pw"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.users.EXPECT().SignIn(gomock.Any(), models.Credentials{Email: "a@b.c", Password: "pw"}).
		Return(models.User{ID: "u-1", Email: "a@b.c", Password: "pw"}, nil)

	rec := serve(t, h, http.MethodPost, "/api/users/login", models.Credentials{Email: "a@b.c", Password: "pw"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeResponse[models.User](t, rec).Password)
}

func TestLogin_Unauthorized(t *testing.T) {
	for _, err := range []error{service.ErrWrongPassword, fmt.Errorf("error finding user: %w", store.ErrUserNotFound)} {
		h, ts := newTestHandler(t)
		ts.users.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.User{}, err)

		rec := serve(t, h, http.MethodPost, "/api/users/login", models.Credentials{Email: "a@b.c", Password: "bad"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email/password", decodeResponse[utils.ErrorResponse](t, rec).Error)
	}
}

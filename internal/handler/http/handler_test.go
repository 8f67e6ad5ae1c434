package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/mock"
	"github.com/MKhiriev/levelup/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	ai        *mock.MockAIService
	documents *mock.MockDocumentService
	library   *mock.MockLibraryService
	users     *mock.MockUserService
	appInfo   *mock.MockAppInfoService
}

func newTestHandlerWithConfig(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		ai:        mock.NewMockAIService(ctrl),
		documents: mock.NewMockDocumentService(ctrl),
		library:   mock.NewMockLibraryService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AIService:       ts.ai,
		DocumentService: ts.documents,
		LibraryService:  ts.library,
		UserService:     ts.users,
		AppInfoService:  ts.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), ts
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	return newTestHandlerWithConfig(t, config.Server{RequestTimeout: 5 * time.Second})
}

// encodeBody serialises v to JSON. Strings are sent as-is.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	if v == nil {
		return http.NoBody
	}
	if s, ok := v.(string); ok {
		return strings.NewReader(s)
	}
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// serve sends a request through the full router.
func serve(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, encodeBody(t, body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

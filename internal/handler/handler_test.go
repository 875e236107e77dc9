package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/chart0729-create/hany1/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router   *gin.Engine
	listings *repository.FileListingRepository
	users    *repository.UserRepository
	contact  *repository.ContactRepository
}

// newTestAPI wires the full route table against flat-file stores in a
// temp dir, mirroring what main does.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dir := t.TempDir()
	api := &testAPI{
		listings: repository.NewFileListingRepository(filepath.Join(dir, "listings.json")),
		users:    repository.NewUserRepository(filepath.Join(dir, "users.json")),
		contact:  repository.NewContactRepository(filepath.Join(dir, "contact-info.json")),
	}

	api.router = gin.New()
	rg := api.router.Group("/api")
	(&ListingHandler{Store: api.listings}).RegisterRoutes(rg)
	(&UserHandler{Repo: api.users}).RegisterRoutes(rg)
	(&ContactHandler{Repo: api.contact}).RegisterRoutes(rg)
	return api
}

// do performs a request with an optional JSON body and decodes the
// envelope.
func (a *testAPI) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"response is not JSON: %s", w.Body.String())
	return w.Code, envelope
}

func (a *testAPI) get(t *testing.T, path string) (int, map[string]any) {
	return a.do(t, http.MethodGet, path, nil)
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/culibrary/portal/internal/config"
	"github.com/culibrary/portal/internal/database"
	catalogrepo "github.com/culibrary/portal/internal/database/catalog"
	complaintsrepo "github.com/culibrary/portal/internal/database/complaints"
	roomsrepo "github.com/culibrary/portal/internal/database/rooms"
	sessionrepo "github.com/culibrary/portal/internal/database/session"
	"github.com/culibrary/portal/internal/entities"
)

// testPortal wires the router over an in-memory record store, the same way
// entrypoint does over SQLite.
type testPortal struct {
	router   *gin.Engine
	store    *database.MemoryStore
	sessions *sessionrepo.Repository
	catalog  *catalogrepo.Repository
}

func setupPortal(t *testing.T) *testPortal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	sessions := sessionrepo.NewRepository(store)
	catalog := catalogrepo.NewRepository(store)

	router := NewRouter(RouterConfig{
		Sessions:    sessions,
		Catalog:     catalog,
		Complaints:  complaintsrepo.NewRepository(store),
		Rooms:       roomsrepo.NewRepository(store),
		EmailDomain: config.DefaultEmailDomain,
		Version:     "test",
	})

	return &testPortal{
		router:   router,
		store:    store,
		sessions: sessions,
		catalog:  catalog,
	}
}

// loginAs seeds a session and the default catalog directly through the
// repositories.
func (p *testPortal) loginAs(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, p.sessions.Save(&entities.User{
		Name:      "Test User",
		Email:     email,
		Favorites: entities.Favorites{Books: []int{}, Authors: []string{}},
	}))
	_, err := p.catalog.SeedIfAbsent(entities.DefaultCatalog())
	require.NoError(t, err)
}

func (p *testPortal) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return doOn(t, p.router, method, path, body)
}

func doOn(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// failingSessionStore wraps a SessionStore and fails every Save, simulating
// the user write going down after the catalog write succeeded.
type failingSessionStore struct {
	SessionStore
	saveErr error
}

func (f *failingSessionStore) Save(user *entities.User) error {
	return f.saveErr
}

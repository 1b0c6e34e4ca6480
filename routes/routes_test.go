package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolioapi/config"
	"portfolioapi/handlers"
	"portfolioapi/models"
	repository "portfolioapi/repositories"
	services "portfolioapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "route-test-secret"

type memProjectRepo struct {
	docs []models.Project
}

func (m *memProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	m.docs = append(m.docs, *project)
	return nil
}

func (m *memProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	all := []models.Project{}
	all = append(all, m.docs...)
	return all, nil
}

func (m *memProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	for _, d := range m.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProjectRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Project, error) {
	for i := range m.docs {
		if m.docs[i].ID == id {
			if title, ok := set["title"].(string); ok {
				m.docs[i].Title = title
			}
			return &m.docs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func testMux(t *testing.T) (*http.ServeMux, *memProjectRepo) {
	t.Helper()

	repo := &memProjectRepo{}
	authService := services.NewAuthService(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		JWTSecret:     testSecret,
		TokenTTLHours: 1,
	})

	h := Handlers{
		Project: handlers.NewProjectHandler(services.NewProjectService(repo)),
		Auth:    handlers.NewAuthHandler(authService),
		// The remaining handlers are only reached through the middleware
		// in these tests, so their services stay unset.
		Skill:       handlers.NewSkillHandler(nil),
		Experience:  handlers.NewExperienceHandler(nil),
		Achievement: handlers.NewAchievementHandler(nil),
		Contact:     handlers.NewContactHandler(nil),
		Image:       handlers.NewImageHandler(nil),
	}

	return SetupRoutes(h, testSecret), repo
}

func login(t *testing.T, mux *http.ServeMux, username, password string) (string, int) {
	t.Helper()

	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	r := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		return "", w.Code
	}

	var resp struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Token, w.Code
}

func TestRoutes_PublicListIsOpen(t *testing.T) {
	mux, _ := testMux(t)

	r := httptest.NewRequest("GET", "/api/projects", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestRoutes_AnonymousWriteRejected(t *testing.T) {
	mux, repo := testMux(t)

	body := `{"title":"T","description":"D","technologies":["Go"]}`
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// Nothing was created.
	assert.Empty(t, repo.docs)
}

func TestRoutes_ImageEndpointsRequireSession(t *testing.T) {
	mux, _ := testMux(t)

	for _, path := range []string{"/api/upload", "/api/delete-image"} {
		r := httptest.NewRequest("POST", path, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_ContactsInboxRequiresSession(t *testing.T) {
	mux, _ := testMux(t)

	r := httptest.NewRequest("GET", "/api/contacts", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_LoginRejectsBadCredentials(t *testing.T) {
	mux, _ := testMux(t)

	_, code := login(t, mux, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRoutes_AuthenticatedCrudFlow(t *testing.T) {
	mux, repo := testMux(t)

	token, code := login(t, mux, "admin", "hunter2")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, token)

	// Create
	body := `{"title":"T","description":"D","technologies":["Go"]}`
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.docs, 1)

	id := repo.docs[0].ID.Hex()

	// Update
	r = httptest.NewRequest("PUT", "/api/projects/"+id, strings.NewReader(`{"title":"T2"}`))
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "T2", repo.docs[0].Title)

	// Delete, then delete again: both acknowledged
	for i := 0; i < 2; i++ {
		r = httptest.NewRequest("DELETE", "/api/projects/"+id, nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Empty(t, repo.docs)

	// The deleted id no longer appears in the list
	r = httptest.NewRequest("GET", "/api/projects", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.NotContains(t, w.Body.String(), id)
}

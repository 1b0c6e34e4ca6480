package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProjectService struct {
	projects  []models.Project
	getAllErr error
	updateErr error
}

func (f *fakeProjectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.ID = primitive.NewObjectID()
	f.projects = append(f.projects, *project)
	return project, nil
}

func (f *fakeProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	if f.projects == nil {
		return []models.Project{}, nil
	}
	return f.projects, nil
}

func (f *fakeProjectService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectService) Update(ctx context.Context, id primitive.ObjectID, update *models.ProjectUpdate) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			if update.Title != nil {
				f.projects[i].Title = *update.Title
			}
			return &f.projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func TestProjectHandler_GetAllEmpty(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{})

	r := httptest.NewRequest("GET", "/api/projects", nil)
	w := httptest.NewRecorder()
	h.GetAll(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		StatusCode int              `json:"status_code"`
		Data       []models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Zero documents is an empty array, never null.
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestProjectHandler_CreateThenList(t *testing.T) {
	svc := &fakeProjectService{}
	h := NewProjectHandler(svc)

	body := `{"title":"Portfolio","description":"My site","technologies":["Go"],"featured":true}`
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Portfolio", resp.Data.Title)
	assert.True(t, resp.Data.Featured)
	assert.False(t, resp.Data.ID.IsZero())

	r = httptest.NewRequest("GET", "/api/projects", nil)
	w = httptest.NewRecorder()
	h.GetAll(w, r)

	var list struct {
		Data []models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, resp.Data.ID, list.Data[0].ID)
}

func TestProjectHandler_CreateMissingFields(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{})

	body := `{"title":"Portfolio"}`
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newRequestWithID(method, path, id, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	r.SetPathValue("id", id)
	return r
}

func TestProjectHandler_UpdateNotFound(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{updateErr: repository.ErrNotFound})

	id := primitive.NewObjectID().Hex()
	r := newRequestWithID("PUT", "/api/projects/"+id, id, `{"title":"New"}`)
	w := httptest.NewRecorder()
	h.Update(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_UpdateInvalidID(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{})

	r := newRequestWithID("PUT", "/api/projects/nope", "nope", `{"title":"New"}`)
	w := httptest.NewRecorder()
	h.Update(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_DeleteAlwaysAcks(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{})

	id := primitive.NewObjectID().Hex()
	for i := 0; i < 2; i++ {
		r := newRequestWithID("DELETE", "/api/projects/"+id, id, "")
		w := httptest.NewRecorder()
		h.Delete(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestProjectHandler_GetByIDNotFound(t *testing.T) {
	h := NewProjectHandler(&fakeProjectService{})

	id := primitive.NewObjectID().Hex()
	r := newRequestWithID("GET", "/api/projects/"+id, id, "")
	w := httptest.NewRecorder()
	h.GetByID(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package utils

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolioapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAndValidate_ValidContact(t *testing.T) {
	body := `{"name":"A","email":"a@b.com","message":"hi"}`
	r := httptest.NewRequest("POST", "/api/contacts", strings.NewReader(body))
	w := httptest.NewRecorder()

	var contact models.Contact
	err := DecodeAndValidate(w, r, &contact)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", contact.Email)
}

func TestDecodeAndValidate_BadEmail(t *testing.T) {
	body := `{"name":"A","email":"not-an-email","message":"hi"}`
	r := httptest.NewRequest("POST", "/api/contacts", strings.NewReader(body))
	w := httptest.NewRecorder()

	var contact models.Contact
	err := DecodeAndValidate(w, r, &contact)
	require.Error(t, err)
	assert.Equal(t, 400, w.Code)

	var resp models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Errors are keyed by json field name
	errs, ok := resp.Errors.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "email")
}

func TestDecodeAndValidate_MissingRequiredFields(t *testing.T) {
	body := `{"email":"a@b.com"}`
	r := httptest.NewRequest("POST", "/api/contacts", strings.NewReader(body))
	w := httptest.NewRecorder()

	var contact models.Contact
	err := DecodeAndValidate(w, r, &contact)
	require.Error(t, err)
	assert.Equal(t, 400, w.Code)
}

func TestDecodeAndValidate_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contacts", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	var contact models.Contact
	err := DecodeAndValidate(w, r, &contact)
	require.Error(t, err)
	assert.Equal(t, 400, w.Code)
}

func TestDecodeAndValidate_SkillCategoryEnum(t *testing.T) {
	t.Run("unknown category rejected", func(t *testing.T) {
		body := `{"name":"Go","category":"Unknown"}`
		r := httptest.NewRequest("POST", "/api/skills", strings.NewReader(body))
		w := httptest.NewRecorder()

		var skill models.Skill
		err := DecodeAndValidate(w, r, &skill)
		require.Error(t, err)
		assert.Equal(t, 400, w.Code)
	})

	t.Run("known category accepted", func(t *testing.T) {
		body := `{"name":"Go","category":"Language","level":80}`
		r := httptest.NewRequest("POST", "/api/skills", strings.NewReader(body))
		w := httptest.NewRecorder()

		var skill models.Skill
		err := DecodeAndValidate(w, r, &skill)
		require.NoError(t, err)
		require.NotNil(t, skill.Level)
		assert.Equal(t, 80, *skill.Level)
	})

	t.Run("level out of bounds rejected", func(t *testing.T) {
		body := `{"name":"Go","category":"Language","level":101}`
		r := httptest.NewRequest("POST", "/api/skills", strings.NewReader(body))
		w := httptest.NewRecorder()

		var skill models.Skill
		err := DecodeAndValidate(w, r, &skill)
		require.Error(t, err)
	})
}

func TestDecodeAndValidate_ProjectRequiresTechnologies(t *testing.T) {
	body := `{"title":"T","description":"D","technologies":[]}`
	r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	w := httptest.NewRecorder()

	var project models.Project
	err := DecodeAndValidate(w, r, &project)
	require.Error(t, err)
	assert.Equal(t, 400, w.Code)
}

package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/espace-agenda/core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store Store, mailer Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(store, mailer, zap.NewNop())).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmitContact(t *testing.T) {
	store := &fakeContactStore{}
	mailer := newFakeMailer()
	r := newTestRouter(store, mailer)

	w := postJSON(t, r, "/api/contact", validContactDTO())
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Votre message a été envoyé avec succès. Nous vous répondrons dans les plus brefs délais.", body["message"])
	assert.NotEmpty(t, body["id"])
	require.Len(t, store.subs, 1)

	mailer.wait(t)
}

// The message field is rejected at 9 characters and accepted at 10.
func TestSubmitMessageBoundary(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode int
	}{
		{"one short of minimum", strings.Repeat("a", 9), http.StatusUnprocessableEntity},
		{"exactly minimum", strings.Repeat("a", 10), http.StatusOK},
		{"exactly maximum", strings.Repeat("a", 2000), http.StatusOK},
		{"one past maximum", strings.Repeat("a", 2001), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeContactStore{}, nil)

			dto := validContactDTO()
			dto.Message = tt.message
			w := postJSON(t, r, "/api/contact", dto)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	r := newTestRouter(&fakeContactStore{}, nil)

	dto := validContactDTO()
	dto.Name = "A"
	dto.Email = "not-an-email"

	w := postJSON(t, r, "/api/contact", dto)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "validation failed", body["message"])

	var fields []string
	for _, e := range body["errors"].([]interface{}) {
		fields = append(fields, e.(map[string]interface{})["field"].(string))
	}
	assert.ElementsMatch(t, []string{"name", "email"}, fields)
}

func TestSubmitMalformedJSON(t *testing.T) {
	r := newTestRouter(&fakeContactStore{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeBody(t, w)["message"])
}

func TestListContacts(t *testing.T) {
	phone := "+33 6 12 34 56 78"
	store := &fakeContactStore{subs: []models.ContactSubmission{
		{
			ID:        "sub-1",
			Name:      "Marie Martin",
			Email:     "marie@example.com",
			Phone:     &phone,
			Subject:   "Demande de démonstration",
			Message:   "Bonjour, je souhaiterais une démonstration.",
			Status:    models.ContactStatusNew,
			CreatedAt: time.Now().UTC(),
		},
	}}
	r := newTestRouter(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var subs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "sub-1", subs[0]["id"])
	assert.Equal(t, "new", subs[0]["status"])
}

func TestListContactsBadQuery(t *testing.T) {
	r := newTestRouter(&fakeContactStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts?limit=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid query parameters", decodeBody(t, w)["message"])
}

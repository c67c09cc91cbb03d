package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	"github.com/novakb/novakb/backend/go-services/internal/document/repository"
	"github.com/novakb/novakb/backend/go-services/internal/document/service"
)

func newDocumentTestServer(t *testing.T) (*gin.Engine, *service.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := service.NewService(repository.NewMemoryRepo())
	g := gin.New()
	RegisterDocumentRoutes(g.Group("/api"), svc)
	return g, svc
}

func TestListDocumentsSeedsWelcome(t *testing.T) {
	g, _ := newDocumentTestServer(t)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/api/documents", nil))
	require.Equal(t, 200, w.Code)

	var docs []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "Welcome to Nova", docs[0].Title)
}

func TestCreateDocumentPrepends(t *testing.T) {
	g, _ := newDocumentTestServer(t)

	body := strings.NewReader(`{"title":"Roadmap","content":"<p>q4</p>"}`)
	req := httptest.NewRequest("POST", "/api/documents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	var created document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Roadmap", created.Title)
	require.NotEmpty(t, created.ID)

	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, httptest.NewRequest("GET", "/api/documents", nil))
	var docs []document.Document
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &docs))
	require.Len(t, docs, 2)
	require.Equal(t, created.ID, docs[0].ID)
}

func TestCreateDocumentEmptyBody(t *testing.T) {
	g, _ := newDocumentTestServer(t)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("POST", "/api/documents", nil))
	require.Equal(t, 201, w.Code)

	var created document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Untitled Document", created.Title)
	require.Equal(t, "<p></p>", created.Content)
}

func TestCreateDocumentFromTemplate(t *testing.T) {
	g, _ := newDocumentTestServer(t)

	body := strings.NewReader(`{"templateId":"meeting-notes"}`)
	req := httptest.NewRequest("POST", "/api/documents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	var created document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Meeting Notes", created.Title)
	require.Contains(t, created.Content, "Attendees")
}

func TestCreateDocumentUnknownTemplate(t *testing.T) {
	g, _ := newDocumentTestServer(t)

	body := strings.NewReader(`{"templateId":"nope"}`)
	req := httptest.NewRequest("POST", "/api/documents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 400, w.Code)
}

func TestGetDocumentByID(t *testing.T) {
	g, svc := newDocumentTestServer(t)
	doc, err := svc.Create(context.Background(), "Findable", "<p>x</p>")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/api/documents/"+doc.ID, nil))
	require.Equal(t, 200, w.Code)

	var got document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, doc.ID, got.ID)

	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, httptest.NewRequest("GET", "/api/documents/doesnotexist", nil))
	require.Equal(t, 404, w2.Code)
}

func TestPatchUnknownIDReturnsCollectionUnchanged(t *testing.T) {
	g, svc := newDocumentTestServer(t)
	_, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	body := strings.NewReader(`{"title":"ghost"}`)
	req := httptest.NewRequest("PATCH", "/api/documents/missing", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var docs []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "Welcome to Nova", docs[0].Title)
}

func TestPatchUpdatesTitle(t *testing.T) {
	g, svc := newDocumentTestServer(t)
	doc, err := svc.Create(context.Background(), "Old", "<p>keep</p>")
	require.NoError(t, err)

	body := strings.NewReader(`{"title":"New"}`)
	req := httptest.NewRequest("PATCH", "/api/documents/"+doc.ID, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var docs []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Equal(t, "New", docs[0].Title)
	require.Equal(t, "<p>keep</p>", docs[0].Content)
}

func TestDeleteDocument(t *testing.T) {
	g, svc := newDocumentTestServer(t)
	doc, err := svc.Create(context.Background(), "Doomed", "<p>x</p>")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/documents/"+doc.ID, nil))
	require.Equal(t, 200, w.Code)

	var docs []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	for _, d := range docs {
		require.NotEqual(t, doc.ID, d.ID)
	}
}

func TestListDocumentsTitleFilter(t *testing.T) {
	g, svc := newDocumentTestServer(t)
	_, err := svc.Create(context.Background(), "Grocery List", "<p></p>")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Meeting Agenda", "<p></p>")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/api/documents?q=grocery", nil))
	require.Equal(t, 200, w.Code)

	var docs []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "Grocery List", docs[0].Title)
}

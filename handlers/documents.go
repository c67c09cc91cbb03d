package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	"github.com/novakb/novakb/backend/go-services/internal/document/service"
	"github.com/novakb/novakb/backend/go-services/internal/templates"
)

// RegisterDocumentRoutes registers the note CRUD endpoints backed by the
// document store service.
func RegisterDocumentRoutes(r gin.IRouter, svc *service.Service) {
	r.GET("/documents", func(c *gin.Context) {
		docs, err := svc.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			docs = filterByTitle(docs, q)
		}
		c.JSON(http.StatusOK, docs)
	})

	r.POST("/documents", func(c *gin.Context) {
		var req struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			TemplateID string `json:"templateId"`
		}
		// an empty body is a plain "new untitled note"
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.TemplateID != "" {
			tmpl, ok := templates.ByID(req.TemplateID)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown template"})
				return
			}
			if req.Title == "" {
				req.Title = tmpl.Name
			}
			if req.Content == "" {
				req.Content = tmpl.Content
			}
		}
		doc, err := svc.Create(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
			return
		}
		c.JSON(http.StatusCreated, doc)
	})

	r.GET("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		docs, err := svc.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}
		for _, d := range docs {
			if d.ID == id {
				c.JSON(http.StatusOK, d)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	// PATCH is a silent no-op for an unknown id: the full (unchanged)
	// collection comes back either way
	r.PATCH("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		var fields document.Fields
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		docs, err := svc.Update(c.Request.Context(), id, fields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		c.JSON(http.StatusOK, docs)
	})

	r.DELETE("/documents/:id", func(c *gin.Context) {
		id := c.Param("id")
		docs, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
			return
		}
		c.JSON(http.StatusOK, docs)
	})
}

func filterByTitle(docs []document.Document, q string) []document.Document {
	q = strings.ToLower(q)
	out := make([]document.Document, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Title), q) {
			out = append(out, d)
		}
	}
	return out
}

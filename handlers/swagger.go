package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the notes backend.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>nova-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the notes, sync and AI endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "nova-backend", "version": "v0.1.0" },
  "paths": {
    "/api/documents": {
      "get": { "summary": "List documents, newest first (optional ?q= title filter)", "responses": { "200": { "description": "document list" } } },
      "post": {
        "summary": "Create a document, prepended to the collection",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"templateId":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated document list" }, "400": { "description": "unknown template" } }
      }
    },
    "/api/documents/{id}": {
      "get": { "summary": "Fetch a single document", "responses": { "200": { "description": "document" }, "404": { "description": "not found" } } },
      "patch": {
        "summary": "Update title and/or content (no-op on unknown id)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated document list" } }
      },
      "delete": { "summary": "Delete a document (no-op on unknown id)", "responses": { "200": { "description": "remaining document list" } } }
    },
    "/api/sync/config": {
      "get": { "summary": "Current GitHub sync configuration (token never echoed)", "responses": { "200": { "description": "configuration summary" } } },
      "put": {
        "summary": "Store GitHub sync configuration",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"token":{"type":"string"},"owner":{"type":"string"},"repo":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored" }, "400": { "description": "incomplete configuration" } }
      }
    },
    "/api/sync/push": {
      "post": { "summary": "Push all documents to the configured repository", "responses": { "200": { "description": "push result with pushed/skipped counts" }, "412": { "description": "sync not configured" } } }
    },
    "/api/sync/pull": {
      "post": { "summary": "Pull remote documents and merge into the local set", "responses": { "200": { "description": "merged document list" }, "412": { "description": "sync not configured" }, "502": { "description": "pull failed" } } }
    },
    "/api/ai/generate": {
      "post": {
        "summary": "Generate writing assistance for a document",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"type":{"type":"string"},"context":{"type":"string"},"prompt":{"type":"string"}}}}}},
        "responses": { "200": { "description": "generated text" }, "502": { "description": "generation failed" } }
      }
    },
    "/api/templates": {
      "get": { "summary": "List builtin note templates", "responses": { "200": { "description": "template list" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`

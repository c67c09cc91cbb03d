package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novakb/novakb/backend/go-services/internal/templates"
)

// RegisterTemplateRoutes exposes the builtin note templates.
func RegisterTemplateRoutes(r gin.IRouter) {
	r.GET("/templates", func(c *gin.Context) {
		c.JSON(http.StatusOK, templates.All())
	})
	r.GET("/templates/:id", func(c *gin.Context) {
		tpl, ok := templates.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusOK, tpl)
	})
}

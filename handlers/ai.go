package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novakb/novakb/backend/go-services/internal/ai"
	"github.com/novakb/novakb/backend/go-services/pkg/metrics"
)

// RegisterAIRoutes registers the writing-assist endpoint.
func RegisterAIRoutes(r gin.IRouter, gen ai.Generator) {
	r.POST("/ai/generate", func(c *gin.Context) {
		var req struct {
			Type    string `json:"type"`
			Context string `json:"context"`
			Prompt  string `json:"prompt"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Context == "" && req.Prompt == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "context or prompt is required"})
			return
		}

		prompt := ai.BuildPrompt(ai.SuggestionType(req.Type), req.Context, req.Prompt)
		text, err := gen.Generate(c.Request.Context(), prompt)
		if err != nil {
			metrics.AIRequests.WithLabelValues("error").Inc()
			// fixed retryable-style message, never the underlying cause
			c.JSON(http.StatusBadGateway, gin.H{"error": ai.ErrGenerationFailed.Error()})
			return
		}
		metrics.AIRequests.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{"text": text})
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novakb/novakb/backend/go-services/internal/github"
	"github.com/novakb/novakb/backend/go-services/internal/syncer"
)

// SnapshotLister exposes the archived blob snapshots for manual recovery.
// Optional; registered only when a snapshot archive is configured.
type SnapshotLister interface {
	ListSnapshots(ctx context.Context) ([]string, error)
}

// RegisterSyncRoutes registers the remote-backup endpoints: config
// management, push, pull and the snapshot listing.
func RegisterSyncRoutes(r gin.IRouter, sync *syncer.Service, configs github.ConfigStore, snapshots SnapshotLister) {
	r.GET("/sync/config", func(c *gin.Context) {
		cfg, err := configs.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "config unavailable"})
			return
		}
		if cfg == nil {
			c.JSON(http.StatusOK, gin.H{"configured": false})
			return
		}
		// never echo the token back
		c.JSON(http.StatusOK, gin.H{
			"configured": cfg.Complete(),
			"owner":      cfg.Owner,
			"repo":       cfg.Repo,
			"hasToken":   cfg.Token != "",
		})
	})

	r.PUT("/sync/config", func(c *gin.Context) {
		var cfg github.Config
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !cfg.Complete() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token, owner and repo are required"})
			return
		}
		if err := configs.Save(c.Request.Context(), &cfg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "config save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": true})
	})

	r.POST("/sync/push", func(c *gin.Context) {
		res, err := sync.Push(c.Request.Context())
		if err != nil {
			if errors.Is(err, github.ErrConfigMissing) {
				c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "push failed"})
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.POST("/sync/pull", func(c *gin.Context) {
		merged, err := sync.Pull(c.Request.Context())
		if err != nil {
			if errors.Is(err, github.ErrConfigMissing) {
				c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
				return
			}
			// a pull is all-or-nothing: no partial result survives a batch failure
			c.JSON(http.StatusBadGateway, gin.H{"error": "pull failed"})
			return
		}
		c.JSON(http.StatusOK, merged)
	})

	if snapshots != nil {
		r.GET("/sync/snapshots", func(c *gin.Context) {
			keys, err := snapshots.ListSnapshots(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot listing failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"snapshots": keys})
		})
	}
}

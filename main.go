package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/novakb/novakb/backend/go-services/handlers"
	"github.com/novakb/novakb/backend/go-services/internal/ai"
	"github.com/novakb/novakb/backend/go-services/internal/config"
	"github.com/novakb/novakb/backend/go-services/internal/database"
	"github.com/novakb/novakb/backend/go-services/internal/document/repository"
	"github.com/novakb/novakb/backend/go-services/internal/document/service"
	"github.com/novakb/novakb/backend/go-services/internal/github"
	"github.com/novakb/novakb/backend/go-services/internal/storage"
	"github.com/novakb/novakb/backend/go-services/internal/syncer"
	"github.com/novakb/novakb/backend/go-services/pkg/logger"
	"github.com/novakb/novakb/backend/go-services/pkg/metrics"
	"github.com/novakb/novakb/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v gemini=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Gemini.APIKey != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter and document store can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		candidate := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := candidate.Ping(ctx).Err(); err == nil {
			redisClient = candidate
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Document persistence: Redis when available, then MongoDB, then memory.
	// The memory fallback keeps the API usable in dev without any backing store.
	var repo repository.Repository
	var mongoClient *mongo.Client
	if redisClient != nil {
		repo = repository.NewRedisRepo(redisClient, "")
		logger.Infof("using Redis for document storage")
	} else if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
			col := mongoClient.Database(cfg.MongoDB.Database).Collection("documents")
			repo = repository.NewMongoRepo(col)
			logger.Infof("using MongoDB for document storage")
		}
	}
	if repo == nil {
		repo = repository.NewMemoryRepo()
		logger.Warnf("no persistent store configured, documents are held in memory only")
	}

	docSvc := service.NewService(repo)

	// Optional MinIO snapshot archive for quarantined blobs and pre-merge copies
	var snapshots handlers.SnapshotLister
	var archive *storage.SnapshotArchive
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		archive, err = storage.NewSnapshotArchive(mcfg)
		if err != nil {
			logger.Warnf("snapshot archive unavailable: %v", err)
		} else {
			docSvc.SetArchiver(archive)
			snapshots = archive
			logger.Infof("snapshot archive enabled: bucket=%s", mcfg.Bucket)
		}
	}

	// GitHub sync config: Redis-backed when possible, seeded from env on first boot
	var configs github.ConfigStore
	if redisClient != nil {
		configs = github.NewRedisConfigStore(redisClient, "")
	} else {
		configs = github.NewMemoryConfigStore()
	}
	seedGitHubConfig(ctx, configs, cfg)

	backup := github.NewBackup(configs, nil)
	syncSvc := syncer.NewService(docSvc, backup)
	if archive != nil {
		syncSvc.SetArchiver(archive)
	}

	generator := ai.NewGeminiClient(ai.GeminiOptions{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the document store has a real backing store
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if redisClient != nil {
			deps["redis"] = redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else if mongoClient != nil {
			deps["mongodb"] = mongoClient.Ping(c.Request.Context(), nil) == nil
			if !deps["mongodb"] {
				ready = false
			}
		} else {
			// memory store is always "ready", but flag it
			deps["storage"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterSwagger(r)

	api := r.Group("/api")
	if cfg.Auth.AccessToken != "" {
		api.Use(middleware.AccessTokenMiddleware(cfg.Auth.AccessToken))
	} else {
		logger.Warnf("ACCESS_TOKEN not set, API is unauthenticated")
	}
	handlers.RegisterDocumentRoutes(api, docSvc)
	handlers.RegisterSyncRoutes(api, syncSvc, configs, snapshots)
	handlers.RegisterAIRoutes(api, generator)
	handlers.RegisterTemplateRoutes(api)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting notes backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// seedGitHubConfig stores the env-provided sync target on first boot so a
// deployment can come up pre-configured. A config saved through the API wins.
func seedGitHubConfig(ctx context.Context, configs github.ConfigStore, cfg *config.Config) {
	envCfg := &github.Config{Token: cfg.GitHub.Token, Owner: cfg.GitHub.Owner, Repo: cfg.GitHub.Repo}
	if !envCfg.Complete() {
		return
	}
	existing, err := configs.Get(ctx)
	if err != nil {
		logger.Warnf("github config lookup failed during seeding: %v", err)
		return
	}
	if existing != nil {
		return
	}
	if err := configs.Save(ctx, envCfg); err != nil {
		logger.Warnf("failed to seed github config from env: %v", err)
		return
	}
	logger.Infof("github sync seeded from env: %s/%s", envCfg.Owner, envCfg.Repo)
}

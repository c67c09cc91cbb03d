package github

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrConfigMissing is the precondition failure raised before any network
// call when no complete remote config is stored.
var ErrConfigMissing = errors.New("github configuration missing")

// Config identifies the backup target: an access token plus the repository
// it may write to. Stored as one JSON blob under its own key.
type Config struct {
	Token string `json:"token"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// Complete reports whether every field required for a remote operation is
// present.
func (c *Config) Complete() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.Token) != "" &&
		strings.TrimSpace(c.Owner) != "" &&
		strings.TrimSpace(c.Repo) != ""
}

// ConfigStore persists the remote config. Get returns (nil, nil) when no
// config has been saved.
type ConfigStore interface {
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
}

// RedisConfigStore keeps the config as JSON under a single Redis key.
type RedisConfigStore struct {
	client *redis.Client
	key    string
}

// NewRedisConfigStore creates a Redis-backed config store. Key may be empty,
// in which case the default "nova:github_config" is used.
func NewRedisConfigStore(client *redis.Client, key string) *RedisConfigStore {
	if key == "" {
		key = "nova:github_config"
	}
	return &RedisConfigStore{client: client, key: key}
}

func (s *RedisConfigStore) Get(ctx context.Context) (*Config, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *RedisConfigStore) Save(ctx context.Context, cfg *Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

// MemoryConfigStore holds the config in memory. Used in tests and when no
// Redis is available.
type MemoryConfigStore struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewMemoryConfigStore() *MemoryConfigStore { return &MemoryConfigStore{} }

func (s *MemoryConfigStore) Get(ctx context.Context) (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg == nil {
		return nil, nil
	}
	out := *s.cfg
	return &out, nil
}

func (s *MemoryConfigStore) Save(ctx context.Context, cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cfg
	s.cfg = &copied
	return nil
}

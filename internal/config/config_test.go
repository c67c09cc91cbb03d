package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("ACCESS_TOKEN", "sekrit")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Redis.Host == "" || cfg.Gemini.APIKey == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Auth.AccessToken != "sekrit" {
		t.Fatalf("access token not loaded: %+v", cfg.Auth)
	}
	if cfg.Server.Port == "" || cfg.Gemini.Model == "" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `feed:
  channel_id: "1234567"
  api_key: filekey
  results: 50
  poll_interval: 30s
  fields:
    pm25: field1
    pm10: field2
    temperature: field3
    humidity: field4
cache:
  ttl: 45s
rest:
  listen_addr: 127.0.0.1
  port: 9090
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	provider := NewYAMLProvider(writeConfig(t, sampleConfig))
	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Feed.ChannelID != "1234567" {
		t.Errorf("unexpected channel id %q", cfg.Feed.ChannelID)
	}
	if cfg.Feed.Results != 50 {
		t.Errorf("unexpected results %d", cfg.Feed.Results)
	}
	if cfg.Feed.Fields.PM25 != "field1" || cfg.Feed.Fields.Humidity != "field4" {
		t.Errorf("unexpected field mapping %+v", cfg.Feed.Fields)
	}
	if cfg.Cache.TTL != "45s" {
		t.Errorf("unexpected cache ttl %q", cfg.Cache.TTL)
	}
	if cfg.REST.Port != 9090 || cfg.REST.ListenAddr != "127.0.0.1" {
		t.Errorf("unexpected rest config %+v", cfg.REST)
	}
}

func TestAPIKeyEnvOverride(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "envkey")

	provider := NewYAMLProvider(writeConfig(t, sampleConfig))
	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Feed.APIKey != "envkey" {
		t.Errorf("expected env override, got %q", cfg.Feed.APIKey)
	}
}

func TestGetFeedLazyLoad(t *testing.T) {
	provider := NewYAMLProvider(writeConfig(t, sampleConfig))
	feed, err := provider.GetFeed()
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if feed.PollInterval != "30s" {
		t.Errorf("unexpected poll interval %q", feed.PollInterval)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("expected error for missing file")
	}
}

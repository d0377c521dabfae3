package config

import "time"

// Config holds runtime settings for the Snapfeed CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - MediaUploadURL: full URL of the HTTP media upload endpoint.
//   - UploadPreset: preset name sent with every media upload.
//   - DatabaseDSN: sqlite DSN for the local session store.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - EnrichTimeout: per-author-lookup budget when enriching the feed.
type Config struct {
	ServerEndpointAddr  string
	MediaUploadURL      string
	UploadPreset        string
	DatabaseDSN         string
	OnlineCheckInterval time.Duration
	EnrichTimeout       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.MediaUploadURL = "http://127.0.0.1:8080/upload"
	c.UploadPreset = "userimg"
	c.DatabaseDSN = "snapfeed.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.EnrichTimeout = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

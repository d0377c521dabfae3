package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/snapfeed/snapfeed/internal/flagx"
	"github.com/snapfeed/snapfeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	MediaUploadURL      string         `json:"media_upload_url"`
	UploadPreset        string         `json:"upload_preset"`
	DatabaseDSN         string         `json:"database_dsn"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	EnrichTimeout       timex.Duration `json:"enrich_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// -c or -config. Missing file path means no JSON is loaded. Panics on read or
// unmarshal errors.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.MediaUploadURL = jc.MediaUploadURL
	cfg.UploadPreset = jc.UploadPreset
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	cfg.EnrichTimeout = time.Duration(jc.EnrichTimeout.Duration)
}

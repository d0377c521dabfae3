package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "srv:6001", "-m", "http://srv:6002/upload", "-p", "other", "-d", "x.db", "-i", "7"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "srv:6001", cfg.ServerEndpointAddr)
	assert.Equal(t, "http://srv:6002/upload", cfg.MediaUploadURL)
	assert.Equal(t, "other", cfg.UploadPreset)
	assert.Equal(t, "x.db", cfg.DatabaseDSN)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}

func Test_parseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

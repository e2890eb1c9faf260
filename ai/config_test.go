package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "all-minilm", cfg.EmbeddingModel)
		assert.Equal(t, "none", cfg.Token)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://example.com:9100/v1"),
			WithEmbeddingModel("text-embedding-3-small"),
			WithToken("sk-test"),
		)
		assert.Equal(t, "http://example.com:9100/v1", cfg.EmbeddingHost)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "sk-test", cfg.Token)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		wantHost string
	}{
		{
			name:     "adds v1 suffix",
			host:     "http://localhost:11434",
			wantHost: "http://localhost:11434/v1",
		},
		{
			name:     "strips trailing slash before adding v1",
			host:     "http://localhost:11434/",
			wantHost: "http://localhost:11434/v1",
		},
		{
			name:     "leaves v1 suffix alone",
			host:     "http://localhost:11434/v1",
			wantHost: "http://localhost:11434/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithEmbeddingHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.wantHost, cfg.EmbeddingHost)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty token normalized", func(t *testing.T) {
		cfg := NewConfig(WithToken(""))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "none", cfg.Token)
	})
}

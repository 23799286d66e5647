package logger

import (
	"testing"

	"github.com/brnsuite/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr bool
	}{
		{"console info", config.LogConfig{Level: "info", Format: "console", Output: "stdout"}, false},
		{"json debug", config.LogConfig{Level: "debug", Format: "json", Output: "stderr"}, false},
		{"invalid level", config.LogConfig{Level: "loud", Format: "console", Output: "stdout"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

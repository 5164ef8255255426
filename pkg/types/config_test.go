package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "memory backend is valid",
			config:  Config{Backend: BackendMemory},
			wantErr: nil,
		},
		{
			name:    "sqlite backend is valid",
			config:  Config{Backend: BackendSQLite, DataDir: "/tmp/pv"},
			wantErr: nil,
		},
		{
			name:    "empty backend rejected",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative history cap rejected",
			config:  Config{Backend: BackendMemory, HistoryCap: -1},
			wantErr: ErrHistoryCapInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigEffectiveHistoryCap(t *testing.T) {
	assert.Equal(t, DefaultHistoryCap, Config{Backend: BackendMemory}.EffectiveHistoryCap())
	assert.Equal(t, 3, Config{Backend: BackendMemory, HistoryCap: 3}.EffectiveHistoryCap())
}

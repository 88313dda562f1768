package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name:    "test default options are valid",
			opts:    Options{},
			wantErr: false,
		},
		{
			name:    "test explicit cap is valid",
			opts:    Options{MaxDiagnostics: 25},
			wantErr: false,
		},
		{
			name:    "test negative cap is rejected",
			opts:    Options{MaxDiagnostics: -1},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewServerAppliesDefaultCap(t *testing.T) {
	s, err := NewServer(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDiagnostics, s.opts.MaxDiagnostics)
}

func TestNewServerKeepsExplicitCap(t *testing.T) {
	s, err := NewServer(Options{MaxDiagnostics: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, s.opts.MaxDiagnostics)
}

func TestNewServerRejectsInvalidOptions(t *testing.T) {
	_, err := NewServer(Options{MaxDiagnostics: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server options")
}

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		pat     string
		wantErr bool
	}{
		{
			name:    "Token present",
			pat:     "test-token",
			wantErr: false,
		},
		{
			name:    "Missing token",
			pat:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADO_PAT", tt.pat)

			config, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, config)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, config)
				assert.Equal(t, tt.pat, config.AzureDevOps.PAT)
			}
		})
	}
}

func TestMissingCredentialError(t *testing.T) {
	t.Setenv("ADO_PAT", "")

	_, err := LoadConfig()
	require.Error(t, err)

	var credErr *MissingCredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Equal(t, "ADO_PAT", credErr.Variable)
	assert.Contains(t, err.Error(), "ADO_PAT environment variable is not set")
	assert.Contains(t, err.Error(), "export ADO_PAT=<your_token>")
}

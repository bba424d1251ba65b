package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:8080", "-g", "127.0.0.1:9090", "-e", "production", "-s", "secret",
				"-t", "30", "-w", "12", "-l", "s3", "-f", "books.yaml", "-d", "db",
				"-u", "user", "-p", "password", "-b", "bucket", "-o", "catalog.json", "-r", "us-west-1", "-n", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrHTTP:      "127.0.0.1:8080",
				EndpointAddrGRPC:      "127.0.0.1:9090",
				Environment:           "production",
				SecretKey:             "secret",
				TokenValidityDuration: 30 * time.Minute,
				BcryptCost:            12,
				CatalogSource:         "s3",
				CatalogFile:           "books.yaml",
				DatabaseDSN:           "db",
				S3RootUser:            "user",
				S3RootPassword:        "password",
				S3Bucket:              "bucket",
				S3Key:                 "catalog.json",
				S3Region:              "us-west-1",
				S3BaseEndpoint:        "http://endpoint",
			},
		},
		{
			name:     "config flag and unknown flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-a", ":4000"},
			expected: &Config{EndpointAddrHTTP: ":4000"},
		},
		{
			name:    "bad integer",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsDurationWhenFlagAbsent(t *testing.T) {
	config := &Config{TokenValidityDuration: 90 * time.Second}
	require.NoError(t, parseFlags(config, []string{"-a", ":1"}))
	assert.Equal(t, 90*time.Second, config.TokenValidityDuration)
}

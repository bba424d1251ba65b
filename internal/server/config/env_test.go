package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	env := map[string]string{
		EnvVarSecret:         "env-secret",
		EnvVarEnvironment:    EnvProduction,
		EnvVarDatabaseDSN:    "postgres://db",
		EnvVarS3RootUser:     "",
		EnvVarS3RootPassword: "pw",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, lookup)

	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
	assert.Equal(t, "", cfg.S3RootUser, "empty values are ignored")
	assert.Equal(t, "pw", cfg.S3RootPassword)
}

package config

// Environment variables read by parseEnv.
const (
	EnvVarSecret         = "JWT_SECRET"
	EnvVarEnvironment    = "BOOKSHELF_ENV"
	EnvVarDatabaseDSN    = "DATABASE_DSN"
	EnvVarS3RootUser     = "S3_ROOT_USER"
	EnvVarS3RootPassword = "S3_ROOT_PASSWORD"
)

// parseEnv overlays secrets and deployment settings from the environment.
// Secrets are expected here rather than on the command line, where they would
// show up in process listings.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	for name, dst := range map[string]*string{
		EnvVarSecret:         &config.SecretKey,
		EnvVarEnvironment:    &config.Environment,
		EnvVarDatabaseDSN:    &config.DatabaseDSN,
		EnvVarS3RootUser:     &config.S3RootUser,
		EnvVarS3RootPassword: &config.S3RootPassword,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
}

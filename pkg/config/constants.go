package config

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv     = "GROCERLY_APP_ENV"
	EnvAPIBaseURL = "GROCERLY_API_BASE_URL"
)

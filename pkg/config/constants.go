package config

const (
	EnvPrefix = "FORGEFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv        = "FORGEFRONT_APP_ENV"
	EnvPort          = "FORGEFRONT_APP_PORT"
	EnvLogLevel      = "FORGEFRONT_LOG_LEVEL"
	EnvSessionTTL    = "FORGEFRONT_SESSION_TTL"
	EnvSessionCookie = "FORGEFRONT_SESSION_COOKIE"
)

package config

const (
	EnvPrefix = "BOOKSTORE"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	StateBackendFile   = "file"
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"

	EnvAppEnv        = "BOOKSTORE_APP_ENV"
	EnvPort          = "BOOKSTORE_APP_PORT"
	EnvBackendURL    = "BOOKSTORE_BACKEND_BASE_URL"
	EnvStateBackend  = "BOOKSTORE_STATE_BACKEND"
	EnvStateRedisURL = "BOOKSTORE_STATE_REDIS_URL"
)

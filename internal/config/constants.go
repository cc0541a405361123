package config

// Default configuration values
const (
	DefaultPort               = "8080"
	DefaultLogLevel           = "INFO"
	DefaultLogFormat          = "text"
	DefaultServiceName        = "varmint-server"
	DefaultVersion            = "dev"
	DefaultEnvironment        = "dev"
	DefaultDBUser             = "postgres"
	DefaultDBPassword         = "postgres"
	DefaultDBHost             = "localhost"
	DefaultDBPort             = "5432"
	DefaultDBName             = "varmints"
	DefaultDBMaxConns         = "10"
	DefaultCatalogConfig      = "configs/items.json"
	DefaultCORSAllowedOrigins = "*"
	DefaultLogDir             = "logs"
)

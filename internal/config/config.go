package config

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Store   StoreConfig
	Admin   AdminConfig
	Metrics MetricsConfig
}

// AdminConfig guards the operator-only endpoints.
type AdminConfig struct {
	Token      string
	ExportPath string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		Store:   loadStore(),
		Admin:   loadAdmin(),
		Metrics: loadMetrics(),
	}
}

func loadAdmin() AdminConfig {
	return AdminConfig{
		Token:      envOrDefault(envAdminToken, ""),
		ExportPath: envOrDefault(envExportPath, defaultExportPath),
	}
}

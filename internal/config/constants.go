package config

const (
	envPort         = "PORT"
	envStoreMode    = "STORE_MODE"
	envDataPaths    = "DATA_PATHS"
	envSeedPath     = "SEED_PATH"
	envAdminToken   = "ADMIN_TOKEN"
	envExportPath   = "EXPORT_PATH"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultExportPath  = "/tmp/games-catalog-export.json"
)

// defaultDataPaths lists candidate catalog locations in priority order:
// the working-directory data folder, public asset folders, the server
// build output, then an absolute fallback that survives chdir. The order
// is a deployment-topology heuristic, not logic.
func defaultDataPaths() []string {
	return []string{
		"data/games.json",
		"public/data/games.json",
		"server/public/data/games.json",
		"/var/tmp/games-catalog/games.json",
	}
}

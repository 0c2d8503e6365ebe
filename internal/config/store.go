package config

import "os"

// Store modes. "auto" classifies the runtime environment: serverless
// markers select the in-memory backend, everything else the file backend.
const (
	StoreModeAuto   = "auto"
	StoreModeMemory = "memory"
	StoreModeFile   = "file"
)

// StoreConfig controls the catalog persistence layer.
type StoreConfig struct {
	Mode      string   // memory or file, resolved from StoreModeAuto
	DataPaths []string // candidate locations for the on-disk catalog, most likely first
	SeedPath  string   // optional override for the bundled snapshot
}

func loadStore() StoreConfig {
	mode := envOrDefault(envStoreMode, StoreModeAuto)
	switch mode {
	case StoreModeMemory, StoreModeFile:
	default:
		mode = resolveAutoMode()
	}

	return StoreConfig{
		Mode:      mode,
		DataPaths: listEnvOrDefault(envDataPaths, defaultDataPaths()),
		SeedPath:  envOrDefault(envSeedPath, ""),
	}
}

// resolveAutoMode picks the backend from the deployment environment.
// Serverless platforms give each invocation an ephemeral or read-only
// filesystem, so durable writes have to live in process memory there.
func resolveAutoMode() string {
	for _, marker := range serverlessMarkers {
		if os.Getenv(marker) != "" {
			return StoreModeMemory
		}
	}
	return StoreModeFile
}

var serverlessMarkers = []string{
	"AWS_LAMBDA_FUNCTION_NAME",
	"VERCEL",
	"NETLIFY",
}

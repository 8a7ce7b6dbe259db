package config

import (
	"os"
	"strconv"
	"time"

	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// AppConfig holds application-wide system configuration.
type AppConfig struct {
	HTTPAddr string
	DHIS2    dhis2.Config
	Chunks   ChunkConfig
	Logging  *logging.Config
}

// ChunkConfig carries the per-operation batch and page sizes used against
// the remote API. The sizes differ per call site in the legacy tool; they
// are kept configurable rather than unified because the original rationale
// (server payload limits) is undocumented.
type ChunkConfig struct {
	FetchByIDs      int // DataSet by-id fetch batches
	Save            int // DataSet save batches
	Remove          int // DataSet delete batches
	CategoryOptions int // Project category-option lookups
	DataSetPage     int // page size when walking all DataSets
	ProjectPage     int // page size when walking all Projects
}

// DefaultChunkConfig returns the batch sizes used by the legacy tool.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{
		FetchByIDs:      50,
		Save:            100,
		Remove:          50,
		CategoryOptions: 50,
		DataSetPage:     100,
		ProjectPage:     200,
	}
}

// LoadAppConfigFromEnv loads complete application configuration from
// environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr: getEnvWithDefault("HTTP_ADDR", ":8080"),
		DHIS2:    LoadDHIS2ConfigFromEnv(),
		Chunks:   LoadChunkConfigFromEnv(),
		Logging:  LoadLoggingConfigFromEnv(),
	}
}

// LoadDHIS2ConfigFromEnv loads DHIS2 connection settings from environment
// variables.
func LoadDHIS2ConfigFromEnv() dhis2.Config {
	return dhis2.Config{
		BaseURL:  getEnvWithDefault("DHIS2_BASE_URL", "http://localhost:8080"),
		Username: getEnvWithDefault("DHIS2_USERNAME", ""),
		Password: getEnvWithDefault("DHIS2_PASSWORD", ""),
		Timeout:  getEnvDurationWithDefault("DHIS2_TIMEOUT", 60*time.Second),
	}
}

// LoadChunkConfigFromEnv loads batch sizes from environment variables,
// falling back to the legacy defaults.
func LoadChunkConfigFromEnv() ChunkConfig {
	defaults := DefaultChunkConfig()
	return ChunkConfig{
		FetchByIDs:      getEnvIntWithDefault("CHUNK_FETCH_BY_IDS", defaults.FetchByIDs),
		Save:            getEnvIntWithDefault("CHUNK_SAVE", defaults.Save),
		Remove:          getEnvIntWithDefault("CHUNK_REMOVE", defaults.Remove),
		CategoryOptions: getEnvIntWithDefault("CHUNK_CATEGORY_OPTIONS", defaults.CategoryOptions),
		DataSetPage:     getEnvIntWithDefault("PAGE_SIZE_DATASETS", defaults.DataSetPage),
		ProjectPage:     getEnvIntWithDefault("PAGE_SIZE_PROJECTS", defaults.ProjectPage),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment
// variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

package config // import "code.cloudfoundry.org/regscan/commands/config"

import (
	"os"

	errorspkg "github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Registry             string   `yaml:"registry"`
	InsecureRegistries   []string `yaml:"insecure_registries"`
	Output               string   `yaml:"output"`
	Concurrency          int      `yaml:"concurrency"`
	ChunkSize            int      `yaml:"chunk_size"`
	PageSize             int      `yaml:"page_size"`
	BatchLimit           int      `yaml:"batch_limit"`
	Include              []string `yaml:"include"`
	Exclude              []string `yaml:"exclude"`
	LogLevel             string   `yaml:"log_level"`
	MetronEndpoint       string   `yaml:"metron_endpoint"`
	SlowThresholdSeconds int      `yaml:"slow_threshold_seconds"`
}

func Load(configPath string) (Config, error) {
	configContent, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, errorspkg.Wrap(err, "invalid config path")
	}

	config := defaultConfig()
	if err := yaml.UnmarshalStrict(configContent, &config); err != nil {
		return Config{}, errorspkg.Wrap(err, "invalid config file")
	}

	return config, nil
}

func defaultConfig() Config {
	return Config{
		Output:      "-",
		Concurrency: 10,
		ChunkSize:   100,
		PageSize:    1000,
		BatchLimit:  25,
		LogLevel:    "info",
	}
}

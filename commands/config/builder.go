package config

import (
	errorspkg "github.com/pkg/errors"
)

type Builder struct {
	config *Config
}

// NewBuilder starts from the defaults, overlaid with the file at
// pathToYaml when one is given.
func NewBuilder(pathToYaml string) (*Builder, error) {
	config := defaultConfig()

	if pathToYaml != "" {
		var err error
		config, err = Load(pathToYaml)
		if err != nil {
			return nil, err
		}
	}

	return &Builder{
		config: &config,
	}, nil
}

func (b *Builder) Build() (Config, error) {
	if b.config.Concurrency < 1 {
		return *b.config, errorspkg.New("invalid argument: concurrency must be at least 1")
	}

	if b.config.ChunkSize < 1 {
		return *b.config, errorspkg.New("invalid argument: chunk size must be at least 1")
	}

	if b.config.PageSize < 1 {
		return *b.config, errorspkg.New("invalid argument: page size must be at least 1")
	}

	if b.config.BatchLimit < 1 {
		return *b.config, errorspkg.New("invalid argument: batch limit must be at least 1")
	}

	if err := ValidateLogLevel(b.config.LogLevel); err != nil {
		return *b.config, err
	}

	if err := ValidateGlobs(b.config.Include); err != nil {
		return *b.config, errorspkg.Wrap(err, "invalid argument: include")
	}

	if err := ValidateGlobs(b.config.Exclude); err != nil {
		return *b.config, errorspkg.Wrap(err, "invalid argument: exclude")
	}

	return *b.config, nil
}

func (b *Builder) WithRegistry(registry string) *Builder {
	if registry == "" {
		return b
	}

	b.config.Registry = registry
	return b
}

func (b *Builder) WithInsecureRegistries(insecureRegistries []string) *Builder {
	if len(insecureRegistries) == 0 {
		return b
	}

	b.config.InsecureRegistries = insecureRegistries
	return b
}

func (b *Builder) WithOutput(output string) *Builder {
	if output == "" {
		return b
	}

	b.config.Output = output
	return b
}

func (b *Builder) WithConcurrency(concurrency int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.Concurrency = concurrency
	return b
}

func (b *Builder) WithChunkSize(chunkSize int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.ChunkSize = chunkSize
	return b
}

func (b *Builder) WithPageSize(pageSize int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.PageSize = pageSize
	return b
}

func (b *Builder) WithBatchLimit(batchLimit int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.BatchLimit = batchLimit
	return b
}

func (b *Builder) WithInclude(include []string) *Builder {
	if len(include) == 0 {
		return b
	}

	b.config.Include = include
	return b
}

func (b *Builder) WithExclude(exclude []string) *Builder {
	if len(exclude) == 0 {
		return b
	}

	b.config.Exclude = exclude
	return b
}

func (b *Builder) WithLogLevel(level string, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.LogLevel = level
	return b
}

func (b *Builder) WithMetronEndpoint(metronEndpoint string) *Builder {
	if metronEndpoint == "" {
		return b
	}

	b.config.MetronEndpoint = metronEndpoint
	return b
}

func (b *Builder) WithSlowThresholdSeconds(threshold int, isSet bool) *Builder {
	if !isSet {
		return b
	}

	b.config.SlowThresholdSeconds = threshold
	return b
}

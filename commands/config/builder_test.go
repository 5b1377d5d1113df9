package config_test

import (
	"os"
	"path"

	"code.cloudfoundry.org/regscan/commands/config"
	yaml "gopkg.in/yaml.v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	var (
		configFilePath    string
		builder           *config.Builder
		configRegistry    string
		configConcurrency int
		configLogLevel    string
		configInclude     []string
	)

	BeforeEach(func() {
		configRegistry = "docker://registry.example.com"
		configConcurrency = 5
		configLogLevel = "debug"
		configInclude = []string{"prod-*"}
	})

	JustBeforeEach(func() {
		cfg := config.Config{
			Registry:             configRegistry,
			InsecureRegistries:   []string{"registry.example.com"},
			Output:               "/tmp/inventory.jsonl",
			Concurrency:          configConcurrency,
			ChunkSize:            50,
			PageSize:             500,
			BatchLimit:           10,
			Include:              configInclude,
			Exclude:              []string{"prod-test"},
			LogLevel:             configLogLevel,
			MetronEndpoint:       "config_endpoint:1111",
			SlowThresholdSeconds: 30,
		}

		configYaml, err := yaml.Marshal(cfg)
		Expect(err).NotTo(HaveOccurred())
		configFilePath = path.Join(GinkgoT().TempDir(), "config.yaml")

		Expect(os.WriteFile(configFilePath, configYaml, 0644)).To(Succeed())
		builder, err = config.NewBuilder(configFilePath)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Build", func() {
		It("returns the values read from the config yaml", func() {
			config, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Registry).To(Equal("docker://registry.example.com"))
			Expect(config.InsecureRegistries).To(Equal([]string{"registry.example.com"}))
			Expect(config.Output).To(Equal("/tmp/inventory.jsonl"))
			Expect(config.Concurrency).To(Equal(5))
			Expect(config.ChunkSize).To(Equal(50))
			Expect(config.PageSize).To(Equal(500))
			Expect(config.BatchLimit).To(Equal(10))
			Expect(config.Include).To(Equal([]string{"prod-*"}))
			Expect(config.Exclude).To(Equal([]string{"prod-test"}))
			Expect(config.LogLevel).To(Equal("debug"))
			Expect(config.MetronEndpoint).To(Equal("config_endpoint:1111"))
			Expect(config.SlowThresholdSeconds).To(Equal(30))
		})

		Context("when there is no config file", func() {
			It("returns the defaults", func() {
				builder, err := config.NewBuilder("")
				Expect(err).NotTo(HaveOccurred())

				config, err := builder.Build()
				Expect(err).NotTo(HaveOccurred())
				Expect(config.Concurrency).To(Equal(10))
				Expect(config.ChunkSize).To(Equal(100))
				Expect(config.PageSize).To(Equal(1000))
				Expect(config.Output).To(Equal("-"))
			})
		})

		Context("when concurrency is not positive", func() {
			BeforeEach(func() {
				configConcurrency = -1
			})

			It("returns an error", func() {
				_, err := builder.Build()
				Expect(err).To(MatchError("invalid argument: concurrency must be at least 1"))
			})
		})

		Context("when the log level is unknown", func() {
			BeforeEach(func() {
				configLogLevel = "chatty"
			})

			It("returns an error", func() {
				_, err := builder.Build()
				Expect(err).To(MatchError(ContainSubstring("invalid argument: log level `chatty`")))
			})
		})

		Context("when an include pattern is invalid", func() {
			BeforeEach(func() {
				configInclude = []string{"prod-["}
			})

			It("returns an error", func() {
				_, err := builder.Build()
				Expect(err).To(MatchError(ContainSubstring("invalid argument: include")))
			})
		})

		Context("when config is invalid", func() {
			It("returns an error", func() {
				invalidPath := path.Join(GinkgoT().TempDir(), "invalid_config.yaml")
				Expect(os.WriteFile(invalidPath, []byte("foo-bar"), 0644)).To(Succeed())

				_, err := config.NewBuilder(invalidPath)
				Expect(err).To(MatchError(ContainSubstring("invalid config file")))
			})
		})
	})

	Describe("WithRegistry", func() {
		It("overrides the config's registry", func() {
			config, err := builder.WithRegistry("ecr://us-east-1").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Registry).To(Equal("ecr://us-east-1"))
		})

		It("keeps the config value when empty", func() {
			config, err := builder.WithRegistry("").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Registry).To(Equal("docker://registry.example.com"))
		})
	})

	Describe("WithInsecureRegistries", func() {
		It("overrides the config's insecure registries", func() {
			config, err := builder.WithInsecureRegistries([]string{"1", "2"}).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.InsecureRegistries).To(Equal([]string{"1", "2"}))
		})

		It("keeps the config value when empty", func() {
			config, err := builder.WithInsecureRegistries(nil).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.InsecureRegistries).To(Equal([]string{"registry.example.com"}))
		})
	})

	Describe("WithOutput", func() {
		It("overrides the config's output", func() {
			config, err := builder.WithOutput("-").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Output).To(Equal("-"))
		})
	})

	Describe("WithConcurrency", func() {
		It("overrides the config's concurrency when set", func() {
			config, err := builder.WithConcurrency(20, true).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Concurrency).To(Equal(20))
		})

		It("keeps the config value when not set", func() {
			config, err := builder.WithConcurrency(20, false).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Concurrency).To(Equal(5))
		})
	})

	Describe("WithChunkSize, WithPageSize and WithBatchLimit", func() {
		It("override the config values when set", func() {
			config, err := builder.
				WithChunkSize(7, true).
				WithPageSize(8, true).
				WithBatchLimit(9, true).
				Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.ChunkSize).To(Equal(7))
			Expect(config.PageSize).To(Equal(8))
			Expect(config.BatchLimit).To(Equal(9))
		})
	})

	Describe("WithInclude and WithExclude", func() {
		It("override the config's patterns", func() {
			config, err := builder.WithInclude([]string{"dev-*"}).WithExclude([]string{"dev-old"}).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Include).To(Equal([]string{"dev-*"}))
			Expect(config.Exclude).To(Equal([]string{"dev-old"}))
		})
	})

	Describe("WithLogLevel", func() {
		It("overrides the config's log level when set", func() {
			config, err := builder.WithLogLevel("error", true).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.LogLevel).To(Equal("error"))
		})
	})

	Describe("WithMetronEndpoint", func() {
		It("overrides the config's metron endpoint", func() {
			config, err := builder.WithMetronEndpoint("127.0.0.1:3457").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.MetronEndpoint).To(Equal("127.0.0.1:3457"))
		})
	})

	Describe("WithSlowThresholdSeconds", func() {
		It("overrides the config's threshold when set", func() {
			config, err := builder.WithSlowThresholdSeconds(5, true).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(config.SlowThresholdSeconds).To(Equal(5))
		})
	})
})

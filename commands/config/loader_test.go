package config_test

import (
	"os"
	"path"

	"code.cloudfoundry.org/regscan/commands/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Load", func() {
	var (
		configDir      string
		configFilePath string
	)

	BeforeEach(func() {
		configDir = GinkgoT().TempDir()

		configYaml, err := yaml.Marshal(map[string]interface{}{
			"registry":            "ecr://eu-west-1",
			"insecure_registries": []string{"localhost:5000"},
			"concurrency":         4,
		})
		Expect(err).NotTo(HaveOccurred())
		configFilePath = path.Join(configDir, "config.yaml")

		Expect(os.WriteFile(configFilePath, configYaml, 0644)).To(Succeed())
	})

	It("loads a config file", func() {
		config, err := config.Load(configFilePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(config.Registry).To(Equal("ecr://eu-west-1"))
		Expect(config.InsecureRegistries).To(ConsistOf("localhost:5000"))
		Expect(config.Concurrency).To(Equal(4))
	})

	It("keeps the defaults for missing keys", func() {
		config, err := config.Load(configFilePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(config.ChunkSize).To(Equal(100))
		Expect(config.PageSize).To(Equal(1000))
		Expect(config.BatchLimit).To(Equal(25))
		Expect(config.Output).To(Equal("-"))
		Expect(config.LogLevel).To(Equal("info"))
	})

	Context("when filepath is invalid", func() {
		It("returns an error", func() {
			_, err := config.Load("/tmp/not-here")
			Expect(err).To(MatchError(ContainSubstring("invalid config path")))
		})
	})

	Context("when config file has invalid content", func() {
		BeforeEach(func() {
			configFilePath = path.Join(configDir, "invalid-config.yaml")
			Expect(os.WriteFile(configFilePath, []byte("invalid-content"), 0644)).To(Succeed())
		})

		It("returns an error", func() {
			_, err := config.Load(configFilePath)
			Expect(err).To(MatchError(ContainSubstring("invalid config file")))
		})
	})

	Context("when config file has unknown keys", func() {
		BeforeEach(func() {
			configFilePath = path.Join(configDir, "unknown-config.yaml")
			Expect(os.WriteFile(configFilePath, []byte("store_path: /var/lib\n"), 0644)).To(Succeed())
		})

		It("returns an error", func() {
			_, err := config.Load(configFilePath)
			Expect(err).To(MatchError(ContainSubstring("invalid config file")))
		})
	})
})

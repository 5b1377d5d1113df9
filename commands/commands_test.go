package commands_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/regscan/commands"
	"code.cloudfoundry.org/regscan/commands/config"
	"code.cloudfoundry.org/regscan/output"
	"code.cloudfoundry.org/regscan/testhelpers"
	"github.com/onsi/gomega/gbytes"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/urfave/cli/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const imageManifest = `{"schemaVersion":2,"mediaType":"application/vnd.oci.image.manifest.v1+json","config":{"mediaType":"application/vnd.oci.image.config.v1+json","digest":"sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","size":10},"layers":[{"mediaType":"application/vnd.oci.image.layer.v1.tar+gzip","digest":"sha256:bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb","size":%d}]}`

var _ = Describe("Commands", func() {
	var (
		registry *testhelpers.FakeRegistry
		logger   *lagertest.TestLogger
		stdout   *bytes.Buffer
		app      *cli.App
		exitErr  error
	)

	BeforeEach(func() {
		registry = testhelpers.NewFakeRegistry()
		registry.Start()

		apiDigest := registry.AddManifest("team/api", specsv1.MediaTypeImageManifest, []byte(fmt.Sprintf(imageManifest, 100)), "latest", "v1")
		index := fmt.Sprintf(`{"schemaVersion":2,"mediaType":"application/vnd.oci.image.index.v1+json","manifests":[{"mediaType":"application/vnd.oci.image.manifest.v1+json","digest":"%s","size":1}]}`, apiDigest)
		registry.AddManifest("team/api", specsv1.MediaTypeImageIndex, []byte(index), "multi")
		registry.AddManifest("web", specsv1.MediaTypeImageManifest, []byte(fmt.Sprintf(imageManifest, 200)), "stable")

		logger = lagertest.NewTestLogger("regscan")
		stdout = new(bytes.Buffer)
		exitErr = nil

		configBuilder, err := config.NewBuilder("")
		Expect(err).NotTo(HaveOccurred())

		app = cli.NewApp()
		app.Name = "regscan"
		app.Writer = stdout
		app.Commands = []*cli.Command{
			&commands.ScanCommand,
			&commands.RepositoriesCommand,
			&commands.ImagesCommand,
		}
		app.Metadata = map[string]interface{}{
			"logger":        logger,
			"configBuilder": configBuilder,
		}
		app.ExitErrHandler = func(_ *cli.Context, err error) {
			exitErr = err
		}
	})

	AfterEach(func() {
		registry.Stop()
	})

	run := func(args ...string) error {
		registryArgs := []string{"--registry", "docker://" + registry.Addr(), "--insecure-registry", registry.Addr()}
		return app.RunContext(context.Background(), append(append([]string{"regscan", args[0]}, registryArgs...), args[1:]...))
	}

	Describe("repositories", func() {
		It("prints the selected repositories", func() {
			Expect(run("repositories", "--exclude", "web")).To(Succeed())
			Expect(stdout.String()).To(Equal("team/api\n"))
		})
	})

	Describe("images", func() {
		It("prints one json document per digest", func() {
			Expect(run("images", "team/api")).To(Succeed())

			lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
			Expect(lines).To(HaveLen(2))

			for _, line := range lines {
				var image map[string]interface{}
				Expect(json.Unmarshal(line, &image)).To(Succeed())
				Expect(image["repository_name"]).To(Equal("team/api"))
			}
		})

		Context("when the repository is not given", func() {
			It("fails", func() {
				Expect(run("images")).NotTo(Succeed())
				Expect(exitErr).To(MatchError(ContainSubstring("invalid arguments")))
			})
		})
	})

	Describe("scan", func() {
		var outputPath string

		BeforeEach(func() {
			outputPath = filepath.Join(GinkgoT().TempDir(), "inventory.jsonl")
		})

		It("writes one record per image manifest", func() {
			Expect(run("scan", "--output", outputPath, "--concurrency", "2", "--chunk-size", "1")).To(Succeed())

			file, err := os.Open(outputPath)
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			layerSizes := map[string][]int64{}
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				var record output.Record
				Expect(json.Unmarshal(scanner.Bytes(), &record)).To(Succeed())
				Expect(record.Manifest.Layers).To(HaveLen(1))
				layerSizes[record.RepositoryName] = append(layerSizes[record.RepositoryName], record.Manifest.Layers[0].Size)
			}
			Expect(scanner.Err()).NotTo(HaveOccurred())

			Expect(layerSizes).To(HaveKeyWithValue("team/api", []int64{100, 100}))
			Expect(layerSizes).To(HaveKeyWithValue("web", []int64{200}))
		})

		It("logs the scan", func() {
			Expect(run("scan", "--output", outputPath)).To(Succeed())
			Expect(logger).To(gbytes.Say("regscan.scan.scanned"))
		})

		Context("when the concurrency is invalid", func() {
			It("fails", func() {
				Expect(run("scan", "--output", outputPath, "--concurrency", "0")).NotTo(Succeed())
				Expect(exitErr).To(MatchError("invalid argument: concurrency must be at least 1"))
			})
		})

		Context("when the registry url is not supported", func() {
			It("fails", func() {
				err := app.RunContext(context.Background(), []string{"regscan", "scan", "--registry", "ftp://example.com"})
				Expect(err).To(HaveOccurred())
				Expect(exitErr).To(MatchError(ContainSubstring("unsupported registry url scheme `ftp`")))
			})
		})
	})
})

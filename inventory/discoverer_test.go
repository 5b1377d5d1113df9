package inventory_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/regscan/inventory"
	"code.cloudfoundry.org/regscan/inventory/inventoryfakes"
	"code.cloudfoundry.org/regscan/testhelpers"
	manifestpkg "github.com/containers/image/v5/manifest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	digestpkg "github.com/opencontainers/go-digest"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
)

var _ = Describe("ImageDiscoverer", func() {
	var (
		logger     *lagertest.TestLogger
		fakeClient *inventoryfakes.FakeRegistryClient
		discoverer *inventory.ImageDiscoverer
		pushedAt   time.Time
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("image-discoverer")
		fakeClient = new(inventoryfakes.FakeRegistryClient)
		discoverer = inventory.NewImageDiscoverer(fakeClient, 2)
		pushedAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	})

	It("pages through every image of the repository", func() {
		fakeClient.ListImagesReturnsOnCall(0, inventory.ImagePage{
			ImageDetails: []inventory.ImageDetail{
				{ImageDigest: digestpkg.FromString("d1").String(), ManifestMediaType: specsv1.MediaTypeImageManifest, ImageTags: []string{"v1"}, ImagePushedAt: pushedAt},
				{ImageDigest: digestpkg.FromString("d2").String(), ManifestMediaType: manifestpkg.DockerV2ListMediaType},
			},
			NextToken: "page-2",
		}, nil)
		fakeClient.ListImagesReturnsOnCall(1, inventory.ImagePage{
			ImageDetails: []inventory.ImageDetail{
				{ImageDigest: digestpkg.FromString("d3").String(), ManifestMediaType: manifestpkg.DockerV2Schema2MediaType},
			},
		}, nil)

		images, err := discoverer.Discover(context.Background(), logger, "repo")
		Expect(err).NotTo(HaveOccurred())

		Expect(images).To(HaveLen(3))
		Expect(images[0].RepositoryName).To(Equal("repo"))
		Expect(images[0].ManifestKind).To(Equal(inventory.ManifestKindImage))
		Expect(images[0].ImageTags).To(Equal([]string{"v1"}))
		Expect(images[0].ImagePushedAt).To(Equal(pushedAt))
		Expect(images[1].ManifestKind).To(Equal(inventory.ManifestKindList))
		Expect(images[1].ImageTags).To(BeEmpty())
		Expect(images[2].ManifestKind).To(Equal(inventory.ManifestKindImage))

		Expect(fakeClient.ListImagesCallCount()).To(Equal(2))
		_, _, repository, pageSize, token := fakeClient.ListImagesArgsForCall(0)
		Expect(repository).To(Equal("repo"))
		Expect(pageSize).To(Equal(2))
		Expect(token).To(BeEmpty())
		_, _, _, _, token = fakeClient.ListImagesArgsForCall(1)
		Expect(token).To(Equal("page-2"))
	})

	It("skips images with unrecognized media types", func() {
		fakeClient.ListImagesReturns(inventory.ImagePage{
			ImageDetails: []inventory.ImageDetail{
				{ImageDigest: digestpkg.FromString("d1").String(), ManifestMediaType: "application/vnd.docker.distribution.manifest.v1+prettyjws"},
				{ImageDigest: digestpkg.FromString("d2").String(), ManifestMediaType: specsv1.MediaTypeImageIndex},
			},
		}, nil)

		images, err := discoverer.Discover(context.Background(), logger, "repo")
		Expect(err).NotTo(HaveOccurred())

		Expect(images).To(HaveLen(1))
		Expect(images[0].ManifestDigest).To(Equal(digestpkg.FromString("d2")))
	})

	It("merges entries that share a digest", func() {
		later := pushedAt.Add(time.Hour)
		pull := pushedAt.Add(2 * time.Hour)
		fakeClient.ListImagesReturns(inventory.ImagePage{
			ImageDetails: []inventory.ImageDetail{
				{ImageDigest: digestpkg.FromString("d1").String(), ManifestMediaType: specsv1.MediaTypeImageManifest, ImageTags: []string{"a"}, ImagePushedAt: later},
				{ImageDigest: digestpkg.FromString("d1").String(), ManifestMediaType: specsv1.MediaTypeImageManifest, ImageTags: []string{"b", "a"}, ImagePushedAt: pushedAt, LastRecordedPullTime: &pull},
			},
		}, nil)

		images, err := discoverer.Discover(context.Background(), logger, "repo")
		Expect(err).NotTo(HaveOccurred())

		Expect(images).To(HaveLen(1))
		Expect(images[0].ImageTags).To(Equal([]string{"a", "b"}))
		Expect(images[0].ImagePushedAt).To(Equal(pushedAt))
		Expect(images[0].LastRecordedPullTime).To(HaveValue(Equal(pull)))
	})

	Context("when the registry fails", func() {
		BeforeEach(func() {
			fakeClient.ListImagesReturns(inventory.ImagePage{}, errors.New("throttled"))
		})

		It("returns a transport error", func() {
			_, err := discoverer.Discover(context.Background(), logger, "repo")
			Expect(err).To(testhelpers.BeErrorType(inventory.TransportErr{}))
			Expect(err).To(MatchError(ContainSubstring("throttled")))
		})
	})

	Context("when an image digest is malformed", func() {
		BeforeEach(func() {
			fakeClient.ListImagesReturns(inventory.ImagePage{
				ImageDetails: []inventory.ImageDetail{
					{ImageDigest: "not-a-digest", ManifestMediaType: specsv1.MediaTypeImageManifest},
				},
			}, nil)
		})

		It("returns a protocol error", func() {
			_, err := discoverer.Discover(context.Background(), logger, "repo")
			Expect(err).To(testhelpers.BeErrorType(inventory.ProtocolErr{}))
		})
	})

	Context("when the registry repeats a page token", func() {
		BeforeEach(func() {
			fakeClient.ListImagesReturns(inventory.ImagePage{NextToken: "same"}, nil)
		})

		It("returns a protocol error instead of looping", func() {
			_, err := discoverer.Discover(context.Background(), logger, "repo")
			Expect(err).To(testhelpers.BeErrorType(inventory.ProtocolErr{}))
			Expect(fakeClient.ListImagesCallCount()).To(Equal(2))
		})
	})
})

package inventory // import "code.cloudfoundry.org/regscan/inventory"

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	digestpkg "github.com/opencontainers/go-digest"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
)

const (
	MetricBatchGetManifestsTime = "BatchGetManifestsTime"
	MetricRepositoryScanTime    = "RepositoryScanTime"
)

//go:generate counterfeiter . RegistryClient
//go:generate counterfeiter . ProgressReporter
//go:generate counterfeiter . OutputSink
//go:generate counterfeiter . MetricsEmitter

type RepositoryPage struct {
	RepositoryNames []string
	NextToken       string
}

type ImageDetail struct {
	RepositoryName       string
	ImageDigest          string
	ManifestMediaType    string
	ImageTags            []string
	ImagePushedAt        time.Time
	LastRecordedPullTime *time.Time
}

type ImagePage struct {
	ImageDetails []ImageDetail
	NextToken    string
}

type ResolvedManifest struct {
	Digest    digestpkg.Digest
	Manifest  string
	MediaType string
}

// RegistryClient is shared by every repository task and must be safe for
// concurrent use. An empty NextToken marks the last page.
type RegistryClient interface {
	ListRepositories(ctx context.Context, logger lager.Logger, pageSize int, pageToken string) (RepositoryPage, error)
	ListImages(ctx context.Context, logger lager.Logger, repository string, pageSize int, pageToken string) (ImagePage, error)
	BatchGetManifests(ctx context.Context, logger lager.Logger, repository string, digests []digestpkg.Digest) ([]ResolvedManifest, error)
	BatchLimit() int
}

type ProgressReporter interface {
	// SetTotal is called once the amount of work is known.
	SetTotal(total int)
	Increment(n int)
}

type OutputSink interface {
	Emit(image ImageWithManifests) error
	Flush() error
}

type MetricsEmitter interface {
	TryEmitDuration(logger lager.Logger, name string, duration time.Duration)
	TryEmitDurationFrom(logger lager.Logger, name string, from time.Time)
}

type RepositoryImage struct {
	RepositoryName       string           `json:"repository_name"`
	ManifestDigest       digestpkg.Digest `json:"manifest_digest"`
	ManifestKind         ManifestKind     `json:"manifest_type"`
	ImageTags            []string         `json:"image_tags"`
	ImagePushedAt        time.Time        `json:"image_pushed_at"`
	LastRecordedPullTime *time.Time       `json:"last_recorded_pull_time,omitempty"`
}

func (i RepositoryImage) String() string {
	return fmt.Sprintf("%s digest=%s type=%s tags=%v", i.RepositoryName, i.ManifestDigest, i.ManifestKind, i.ImageTags)
}

type ManifestWithDescriptor struct {
	Manifest   specsv1.Manifest    `json:"manifest"`
	Descriptor *specsv1.Descriptor `json:"descriptor,omitempty"`
}

type ImageWithManifests struct {
	Image     RepositoryImage          `json:"image"`
	Manifests []ManifestWithDescriptor `json:"manifests"`
}

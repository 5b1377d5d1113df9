package distribution // import "code.cloudfoundry.org/regscan/fetcher/distribution"

import (
	"context"
	"net/http"
	"sort"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/inventory"
	digestpkg "github.com/opencontainers/go-digest"
	errorspkg "github.com/pkg/errors"
	"github.com/regclient/regclient"
	"github.com/regclient/regclient/scheme"
	"github.com/regclient/regclient/types/manifest"
	"github.com/regclient/regclient/types/ref"
	"github.com/regclient/regclient/types/repo"
	"github.com/regclient/regclient/types/tag"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchLimit = 25
	headConcurrency   = 4
)

//go:generate counterfeiter . Registry

// Registry is the subset of *regclient.RegClient used to inventory an OCI
// distribution registry.
type Registry interface {
	RepoList(ctx context.Context, hostname string, opts ...scheme.RepoOpts) (*repo.RepoList, error)
	TagList(ctx context.Context, r ref.Ref, opts ...scheme.TagOpts) (*tag.List, error)
	ManifestHead(ctx context.Context, r ref.Ref, opts ...regclient.ManifestOpts) (manifest.Manifest, error)
	ManifestGet(ctx context.Context, r ref.Ref, opts ...regclient.ManifestOpts) (manifest.Manifest, error)
}

// Client lists a registry through the catalog and tag APIs. Manifests are
// only reachable through tags, so untagged manifests are never discovered.
type Client struct {
	registry   Registry
	host       string
	batchLimit int
}

func NewClient(registry Registry, host string, batchLimit int) *Client {
	if batchLimit <= 0 {
		batchLimit = DefaultBatchLimit
	}

	return &Client{
		registry:   registry,
		host:       host,
		batchLimit: batchLimit,
	}
}

func (c *Client) BatchLimit() int {
	return c.batchLimit
}

func (c *Client) ListRepositories(ctx context.Context, logger lager.Logger, pageSize int, pageToken string) (inventory.RepositoryPage, error) {
	logger = logger.Session("distribution-list-repositories", lager.Data{"host": c.host, "last": pageToken})
	logger.Debug("starting")
	defer logger.Debug("ending")

	opts := []scheme.RepoOpts{scheme.WithRepoLimit(pageSize)}
	if pageToken != "" {
		opts = append(opts, scheme.WithRepoLast(pageToken))
	}

	repoList, err := c.registry.RepoList(ctx, c.host, opts...)
	if err != nil {
		return inventory.RepositoryPage{}, errorspkg.Wrapf(err, "listing catalog of `%s`", c.host)
	}

	names, err := repoList.GetRepos()
	if err != nil {
		return inventory.RepositoryPage{}, errorspkg.Wrap(err, "reading catalog")
	}

	return inventory.RepositoryPage{
		RepositoryNames: names,
		NextToken:       nextToken(names, pageSize),
	}, nil
}

func (c *Client) ListImages(ctx context.Context, logger lager.Logger, repository string, pageSize int, pageToken string) (inventory.ImagePage, error) {
	logger = logger.Session("distribution-list-images", lager.Data{"repository": repository, "last": pageToken})
	logger.Debug("starting")
	defer logger.Debug("ending")

	repositoryRef, err := c.ref(repository)
	if err != nil {
		return inventory.ImagePage{}, err
	}

	opts := []scheme.TagOpts{scheme.WithTagLimit(pageSize)}
	if pageToken != "" {
		opts = append(opts, scheme.WithTagLast(pageToken))
	}

	tagList, err := c.registry.TagList(ctx, repositoryRef, opts...)
	if err != nil {
		return inventory.ImagePage{}, errorspkg.Wrapf(err, "listing tags of `%s`", repository)
	}

	tags, err := tagList.GetTags()
	if err != nil {
		return inventory.ImagePage{}, errorspkg.Wrapf(err, "reading tags of `%s`", repository)
	}

	details, err := c.describeTags(ctx, logger, repository, repositoryRef, tags)
	if err != nil {
		return inventory.ImagePage{}, err
	}

	return inventory.ImagePage{
		ImageDetails: details,
		NextToken:    nextToken(tags, pageSize),
	}, nil
}

func (c *Client) BatchGetManifests(ctx context.Context, logger lager.Logger, repository string, digests []digestpkg.Digest) ([]inventory.ResolvedManifest, error) {
	logger = logger.Session("distribution-get-manifests", lager.Data{"repository": repository, "count": len(digests)})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if len(digests) > c.batchLimit {
		return nil, errorspkg.Errorf("requested %d manifests, batch limit is %d", len(digests), c.batchLimit)
	}

	repositoryRef, err := c.ref(repository)
	if err != nil {
		return nil, err
	}

	manifests := make([]inventory.ResolvedManifest, 0, len(digests))
	for _, digest := range digests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m, err := c.registry.ManifestGet(ctx, repositoryRef.SetDigest(digest.String()))
		if err != nil {
			logger.Error("getting-manifest-failed", err, lager.Data{"digest": digest})
			return nil, errorspkg.Wrapf(err, "getting manifest %s", digest)
		}

		body, err := m.RawBody()
		if err != nil {
			return nil, errorspkg.Wrapf(err, "reading manifest %s", digest)
		}

		manifests = append(manifests, inventory.ResolvedManifest{
			Digest:    digest,
			Manifest:  string(body),
			MediaType: m.GetDescriptor().MediaType,
		})
	}

	return manifests, nil
}

// describeTags resolves each tag to the digest and media type it points at.
// Tags sharing a digest become a single image detail.
func (c *Client) describeTags(ctx context.Context, logger lager.Logger, repository string, repositoryRef ref.Ref, tags []string) ([]inventory.ImageDetail, error) {
	heads := make([]inventory.ImageDetail, len(tags))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(headConcurrency)
	for i, tagName := range tags {
		i, tagName := i, tagName
		group.Go(func() error {
			m, err := c.registry.ManifestHead(groupCtx, repositoryRef.SetTag(tagName), regclient.WithManifestRequireDigest())
			if err != nil {
				logger.Error("heading-manifest-failed", err, lager.Data{"tag": tagName})
				return errorspkg.Wrapf(err, "resolving tag `%s`", tagName)
			}

			descriptor := m.GetDescriptor()
			heads[i] = inventory.ImageDetail{
				RepositoryName:    repository,
				ImageDigest:       descriptor.Digest.String(),
				ManifestMediaType: descriptor.MediaType,
				ImageTags:         []string{tagName},
				ImagePushedAt:     lastModified(m),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	details := []inventory.ImageDetail{}
	positions := map[string]int{}
	for _, head := range heads {
		if position, ok := positions[head.ImageDigest]; ok {
			details[position].ImageTags = append(details[position].ImageTags, head.ImageTags...)
			continue
		}
		positions[head.ImageDigest] = len(details)
		details = append(details, head)
	}

	for i := range details {
		sort.Strings(details[i].ImageTags)
	}

	return details, nil
}

func (c *Client) ref(repository string) (ref.Ref, error) {
	r, err := ref.New(c.host + "/" + repository)
	if err != nil {
		return ref.Ref{}, errorspkg.Wrapf(err, "parsing reference of `%s`", repository)
	}

	return r, nil
}

func lastModified(m manifest.Manifest) time.Time {
	headers, err := m.RawHeaders()
	if err != nil || headers == nil {
		return time.Time{}
	}

	t, err := http.ParseTime(headers.Get("Last-Modified"))
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}

// nextToken continues after the last name of a full page.
func nextToken(names []string, pageSize int) string {
	if len(names) == 0 || pageSize <= 0 || len(names) < pageSize {
		return ""
	}

	return names[len(names)-1]
}

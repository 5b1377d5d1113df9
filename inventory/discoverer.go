package inventory

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"
	digestpkg "github.com/opencontainers/go-digest"
	errorspkg "github.com/pkg/errors"
)

const DefaultPageSize = 1000

type ImageDiscoverer struct {
	client   RegistryClient
	pageSize int
}

func NewImageDiscoverer(client RegistryClient, pageSize int) *ImageDiscoverer {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &ImageDiscoverer{
		client:   client,
		pageSize: pageSize,
	}
}

// Discover lists every image of the repository whose manifest media type is
// recognized. Entries sharing a digest are merged into a single image.
func (d *ImageDiscoverer) Discover(ctx context.Context, logger lager.Logger, repository string) ([]RepositoryImage, error) {
	logger = logger.Session("discovering-images", lager.Data{"repository": repository})
	logger.Info("starting")
	defer logger.Info("ending")

	images := []RepositoryImage{}
	positions := map[digestpkg.Digest]int{}

	pageToken := ""
	for page := 1; ; page++ {
		imagePage, err := d.client.ListImages(ctx, logger, repository, d.pageSize, pageToken)
		if err != nil {
			logger.Error("listing-images-failed", err, lager.Data{"page": page})
			return nil, errorspkg.Wrapf(transportErr(err), "listing images of `%s`", repository)
		}
		logger.Debug("listed-images-page", lager.Data{"page": page, "images": len(imagePage.ImageDetails)})

		for _, detail := range imagePage.ImageDetails {
			image, ok, err := newRepositoryImage(repository, detail)
			if err != nil {
				return nil, err
			}
			if !ok {
				logger.Debug("skipping-unrecognized-media-type", lager.Data{
					"digest":    detail.ImageDigest,
					"mediaType": detail.ManifestMediaType,
				})
				continue
			}

			if position, ok := positions[image.ManifestDigest]; ok {
				images[position] = mergeImages(images[position], image)
				continue
			}
			positions[image.ManifestDigest] = len(images)
			images = append(images, image)
		}

		if imagePage.NextToken == "" {
			break
		}
		if imagePage.NextToken == pageToken {
			return nil, NewProtocolErr(errorspkg.Errorf("registry repeated page token `%s` for `%s`", pageToken, repository))
		}
		pageToken = imagePage.NextToken
	}

	logger.Debug("discovered-images", lager.Data{"count": len(images)})
	return images, nil
}

func newRepositoryImage(repository string, detail ImageDetail) (RepositoryImage, bool, error) {
	kind, ok := ClassifyMediaType(detail.ManifestMediaType)
	if !ok {
		return RepositoryImage{}, false, nil
	}

	digest, err := digestpkg.Parse(detail.ImageDigest)
	if err != nil {
		return RepositoryImage{}, false, errorspkg.Wrapf(NewProtocolErr(err), "image of `%s` has digest `%s`", repository, detail.ImageDigest)
	}

	name := detail.RepositoryName
	if name == "" {
		name = repository
	}

	tags := make([]string, len(detail.ImageTags))
	copy(tags, detail.ImageTags)

	var lastPull *time.Time
	if detail.LastRecordedPullTime != nil {
		t := *detail.LastRecordedPullTime
		lastPull = &t
	}

	return RepositoryImage{
		RepositoryName:       name,
		ManifestDigest:       digest,
		ManifestKind:         kind,
		ImageTags:            tags,
		ImagePushedAt:        detail.ImagePushedAt,
		LastRecordedPullTime: lastPull,
	}, true, nil
}

func mergeImages(existing, other RepositoryImage) RepositoryImage {
	merged := existing

	merged.ImageTags = append([]string{}, existing.ImageTags...)
	for _, tag := range other.ImageTags {
		if !containsString(merged.ImageTags, tag) {
			merged.ImageTags = append(merged.ImageTags, tag)
		}
	}

	if merged.ImagePushedAt.IsZero() || (!other.ImagePushedAt.IsZero() && other.ImagePushedAt.Before(merged.ImagePushedAt)) {
		merged.ImagePushedAt = other.ImagePushedAt
	}

	if other.LastRecordedPullTime != nil &&
		(merged.LastRecordedPullTime == nil || other.LastRecordedPullTime.After(*merged.LastRecordedPullTime)) {
		merged.LastRecordedPullTime = other.LastRecordedPullTime
	}

	return merged
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

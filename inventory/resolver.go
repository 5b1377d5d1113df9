package inventory

import (
	"context"
	"encoding/json"

	"code.cloudfoundry.org/lager/v3"
	units "github.com/docker/go-units"
	digestpkg "github.com/opencontainers/go-digest"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
	errorspkg "github.com/pkg/errors"
)

const (
	DefaultChunkSize   = 100
	DefaultConcurrency = 10
)

type ManifestResolver struct {
	client         RegistryClient
	progress       ProgressReporter
	metricsEmitter MetricsEmitter
	chunkSize      int
	concurrency    int
}

type manifestList struct {
	image       RepositoryImage
	descriptors []specsv1.Descriptor
}

type listChild struct {
	owner      int
	descriptor specsv1.Descriptor
}

func NewManifestResolver(client RegistryClient, progress ProgressReporter, metricsEmitter MetricsEmitter, chunkSize, concurrency int) *ManifestResolver {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if limit := client.BatchLimit(); limit > 0 && chunkSize > limit {
		chunkSize = limit
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &ManifestResolver{
		client:         client,
		progress:       progress,
		metricsEmitter: metricsEmitter,
		chunkSize:      chunkSize,
		concurrency:    concurrency,
	}
}

func (r *ManifestResolver) Resolve(ctx context.Context, logger lager.Logger, repository string, images []RepositoryImage) ([]ImageWithManifests, error) {
	logger = logger.Session("resolving-manifests", lager.Data{"repository": repository, "images": len(images)})
	logger.Info("starting")
	defer logger.Info("ending")

	resolved, lists, err := r.resolveImages(ctx, logger, repository, images)
	if err != nil {
		return nil, errorspkg.Wrap(err, "resolving image manifests")
	}
	logger.Debug("resolved-images", lager.Data{"resolved": len(resolved), "manifestLists": len(lists)})

	if len(lists) > 0 {
		expanded, err := r.expandManifestLists(ctx, logger, repository, lists)
		if err != nil {
			return nil, errorspkg.Wrap(err, "resolving manifest list items")
		}
		logger.Debug("expanded-manifest-lists", lager.Data{"resolved": len(expanded)})
		resolved = append(resolved, expanded...)
	}

	logger.Debug("resolved", lager.Data{
		"images":     len(resolved),
		"layersSize": units.HumanSize(float64(layersSize(resolved))),
	})
	return resolved, nil
}

func (r *ManifestResolver) resolveImages(ctx context.Context, logger lager.Logger, repository string, images []RepositoryImage) ([]ImageWithManifests, []manifestList, error) {
	requests := map[digestpkg.Digest][]RepositoryImage{}
	for _, image := range images {
		requests[image.ManifestDigest] = append(requests[image.ManifestDigest], image)
	}

	results, err := resolveBatches(ctx, logger, r.batcher(), repository, requests)
	if err != nil {
		return nil, nil, err
	}

	resolved := []ImageWithManifests{}
	lists := []manifestList{}
	for _, result := range results {
		kind, err := classifyResolved(result.manifest)
		if err != nil {
			return nil, nil, err
		}

		switch kind {
		case ManifestKindImage:
			manifest, err := parseImageManifest(result.manifest)
			if err != nil {
				return nil, nil, err
			}

			for _, image := range result.passenger {
				resolved = append(resolved, ImageWithManifests{
					Image:     image,
					Manifests: []ManifestWithDescriptor{{Manifest: manifest}},
				})
			}

		case ManifestKindList:
			descriptors, err := parseIndexDescriptors(result.manifest)
			if err != nil {
				return nil, nil, err
			}

			for _, image := range result.passenger {
				if len(descriptors) == 0 {
					logger.Info("empty-manifest-list", lager.Data{"image": image.String()})
					resolved = append(resolved, ImageWithManifests{Image: image, Manifests: []ManifestWithDescriptor{}})
					continue
				}
				lists = append(lists, manifestList{image: image, descriptors: descriptors})
			}
		}
	}

	return resolved, lists, nil
}

func (r *ManifestResolver) expandManifestLists(ctx context.Context, logger lager.Logger, repository string, lists []manifestList) ([]ImageWithManifests, error) {
	requests := map[digestpkg.Digest][]listChild{}
	for i, list := range lists {
		for _, descriptor := range list.descriptors {
			if err := descriptor.Digest.Validate(); err != nil {
				return nil, errorspkg.Wrapf(NewProtocolErr(err), "manifest list %s references digest `%s`", list.image.ManifestDigest, descriptor.Digest)
			}
			requests[descriptor.Digest] = append(requests[descriptor.Digest], listChild{owner: i, descriptor: descriptor})
		}
	}

	results, err := resolveBatches(ctx, logger, r.batcher(), repository, requests)
	if err != nil {
		return nil, err
	}

	grouped := make([][]ManifestWithDescriptor, len(lists))
	for _, result := range results {
		kind, err := classifyResolved(result.manifest)
		if err != nil {
			return nil, err
		}
		if kind == ManifestKindList {
			return nil, NewProtocolErr(errorspkg.Errorf("manifest list item %s resolved to another manifest list", result.manifest.Digest))
		}

		manifest, err := parseImageManifest(result.manifest)
		if err != nil {
			return nil, err
		}

		for _, child := range result.passenger {
			descriptor := child.descriptor
			grouped[child.owner] = append(grouped[child.owner], ManifestWithDescriptor{
				Manifest:   manifest,
				Descriptor: &descriptor,
			})
		}
	}

	expanded := make([]ImageWithManifests, 0, len(lists))
	for i, list := range lists {
		expanded = append(expanded, ImageWithManifests{Image: list.image, Manifests: grouped[i]})
	}

	return expanded, nil
}

func (r *ManifestResolver) batcher() batchResolver {
	return batchResolver{
		client:         r.client,
		progress:       r.progress,
		metricsEmitter: r.metricsEmitter,
		chunkSize:      r.chunkSize,
		concurrency:    r.concurrency,
	}
}

func classifyResolved(resolved ResolvedManifest) (ManifestKind, error) {
	kind, ok := ClassifyMediaType(resolved.MediaType)
	if !ok {
		return "", NewProtocolErr(errorspkg.Errorf("manifest %s has unexpected media type `%s`", resolved.Digest, resolved.MediaType))
	}

	return kind, nil
}

func parseImageManifest(resolved ResolvedManifest) (specsv1.Manifest, error) {
	var manifest specsv1.Manifest
	if err := json.Unmarshal([]byte(resolved.Manifest), &manifest); err != nil {
		return specsv1.Manifest{}, errorspkg.Wrapf(NewParseErr(err), "parsing image manifest %s", resolved.Digest)
	}

	return manifest, nil
}

func parseIndexDescriptors(resolved ResolvedManifest) ([]specsv1.Descriptor, error) {
	var index specsv1.Index
	if err := json.Unmarshal([]byte(resolved.Manifest), &index); err != nil {
		return nil, errorspkg.Wrapf(NewParseErr(err), "parsing manifest list %s", resolved.Digest)
	}

	return index.Manifests, nil
}

func layersSize(images []ImageWithManifests) int64 {
	var size int64
	for _, image := range images {
		for _, entry := range image.Manifests {
			for _, layer := range entry.Manifest.Layers {
				size += layer.Size
			}
		}
	}

	return size
}

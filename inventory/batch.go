package inventory

import (
	"context"
	"sort"
	"time"

	"code.cloudfoundry.org/lager/v3"
	digestpkg "github.com/opencontainers/go-digest"
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type batchResolver struct {
	client         RegistryClient
	progress       ProgressReporter
	metricsEmitter MetricsEmitter
	chunkSize      int
	concurrency    int
}

type resolvedDigest[P any] struct {
	passenger P
	manifest  ResolvedManifest
}

// resolveBatches fetches the manifest of every requested digest, handing
// each one back together with the passenger it was requested for. Digests
// are fetched in chunks of at most chunkSize, with no more than concurrency
// chunks in flight. The first failing chunk fails the whole batch.
func resolveBatches[P any](ctx context.Context, logger lager.Logger, b batchResolver, repository string, requests map[digestpkg.Digest]P) ([]resolvedDigest[P], error) {
	logger = logger.Session("batch-resolving", lager.Data{"repository": repository, "digests": len(requests)})
	logger.Debug("starting")
	defer logger.Debug("ending")

	chunks := chunkDigests(sortedDigests(requests), b.chunkSize)
	chunkResults := make([][]ResolvedManifest, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.concurrency)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			manifests, err := b.fetchChunk(groupCtx, logger, repository, chunk)
			if err != nil {
				return err
			}

			chunkResults[i] = manifests
			b.progress.Increment(len(chunk))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error("batch-resolving-failed", err)
		return nil, err
	}

	results := []resolvedDigest[P]{}
	for _, manifests := range chunkResults {
		for _, manifest := range manifests {
			results = append(results, resolvedDigest[P]{
				passenger: requests[manifest.Digest],
				manifest:  manifest,
			})
		}
	}

	return results, nil
}

func (b batchResolver) fetchChunk(ctx context.Context, logger lager.Logger, repository string, chunk []digestpkg.Digest) ([]ResolvedManifest, error) {
	logger.Debug("batch-get-manifests", lager.Data{"chunkSize": len(chunk), "first": chunk[0]})

	startTime := time.Now()
	manifests, err := b.client.BatchGetManifests(ctx, logger, repository, chunk)
	b.metricsEmitter.TryEmitDurationFrom(logger, MetricBatchGetManifestsTime, startTime)
	if err != nil {
		return nil, errorspkg.Wrapf(transportErr(err), "batch getting %d manifests from `%s`", len(chunk), repository)
	}

	return matchChunk(chunk, manifests)
}

// matchChunk drops repeated (digest, manifest, media type) triples from a
// batch response and checks that the response covers exactly the requested
// digests.
func matchChunk(chunk []digestpkg.Digest, manifests []ResolvedManifest) ([]ResolvedManifest, error) {
	requested := make(map[digestpkg.Digest]bool, len(chunk))
	for _, digest := range chunk {
		requested[digest] = true
	}

	seen := make(map[digestpkg.Digest]ResolvedManifest, len(manifests))
	unique := make([]ResolvedManifest, 0, len(manifests))
	for _, manifest := range manifests {
		if !requested[manifest.Digest] {
			return nil, NewProtocolErr(errorspkg.Errorf("digest %s not present in request", manifest.Digest))
		}

		if previous, ok := seen[manifest.Digest]; ok {
			if previous != manifest {
				return nil, NewProtocolErr(errorspkg.Errorf("digest %s returned with conflicting content", manifest.Digest))
			}
			continue
		}

		seen[manifest.Digest] = manifest
		unique = append(unique, manifest)
	}

	missing := []string{}
	for _, digest := range chunk {
		if _, ok := seen[digest]; !ok {
			missing = append(missing, digest.String())
		}
	}
	if len(missing) > 0 {
		return nil, NewProtocolErr(errorspkg.Errorf("registry did not return manifests for %v", missing))
	}

	return unique, nil
}

func sortedDigests[P any](requests map[digestpkg.Digest]P) []digestpkg.Digest {
	digests := make([]digestpkg.Digest, 0, len(requests))
	for digest := range requests {
		digests = append(digests, digest)
	}
	sort.Slice(digests, func(i, j int) bool { return digests[i] < digests[j] })

	return digests
}

func chunkDigests(digests []digestpkg.Digest, size int) [][]digestpkg.Digest {
	chunks := [][]digestpkg.Digest{}
	for size < len(digests) {
		digests, chunks = digests[size:], append(chunks, digests[:size:size])
	}
	if len(digests) > 0 {
		chunks = append(chunks, digests)
	}

	return chunks
}

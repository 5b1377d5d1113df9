package inventory

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
	shortid "github.com/ventu-io/go-shortid"
	"golang.org/x/sync/errgroup"
)

type Scanner struct {
	filter         RepositoryFilter
	discoverer     *ImageDiscoverer
	resolver       *ManifestResolver
	sink           OutputSink
	progress       ProgressReporter
	metricsEmitter MetricsEmitter
	concurrency    int
}

type repositoryResult struct {
	repository string
	images     []ImageWithManifests
}

func NewScanner(filter RepositoryFilter, discoverer *ImageDiscoverer, resolver *ManifestResolver, sink OutputSink, progress ProgressReporter, metricsEmitter MetricsEmitter, concurrency int) *Scanner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Scanner{
		filter:         filter,
		discoverer:     discoverer,
		resolver:       resolver,
		sink:           sink,
		progress:       progress,
		metricsEmitter: metricsEmitter,
		concurrency:    concurrency,
	}
}

// Scan inventories every selected repository, emitting results as each
// repository completes. The first failure stops the run; output already
// flushed is left in place.
func (s *Scanner) Scan(ctx context.Context, logger lager.Logger) error {
	runID, err := shortid.Generate()
	if err != nil {
		return errorspkg.Wrap(err, "generating run id")
	}

	logger = logger.Session("scanning", lager.Data{"runID": runID})
	logger.Info("starting")
	defer logger.Info("ending")

	repositories, err := s.filter.List(ctx, logger)
	if err != nil {
		return errorspkg.Wrap(err, "listing repositories")
	}
	logger.Info("discovered-repositories", lager.Data{"count": len(repositories)})
	s.progress.SetTotal(len(repositories))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	// failed is closed before the first failing task returns, so it is
	// already closed when a sibling's send wins the race against groupCtx.
	failed := make(chan struct{})
	var failOnce sync.Once
	fail := func(err error) error {
		failOnce.Do(func() { close(failed) })
		return err
	}

	results := make(chan repositoryResult)
	waitErr := make(chan error, 1)
	go func() {
		for _, repository := range repositories {
			repository := repository
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return fail(err)
				}

				images, err := s.scanRepository(groupCtx, logger, repository)
				if err != nil {
					return fail(err)
				}

				select {
				case results <- repositoryResult{repository: repository, images: images}:
					return nil
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			})
		}
		waitErr <- group.Wait()
		close(results)
	}()

	var emitErr error
	for result := range results {
		if emitErr != nil || stopped(ctx, failed) {
			logger.Debug("discarding-result", lager.Data{"repository": result.repository})
			continue
		}

		if err := s.emit(logger, result); err != nil {
			emitErr = err
			cancel()
			continue
		}
		s.progress.Increment(1)
	}

	if err := <-waitErr; err != nil && emitErr == nil {
		logger.Error("scanning-failed", err)
		return err
	}
	if emitErr != nil {
		logger.Error("emitting-failed", emitErr)
		return emitErr
	}

	return nil
}

func stopped(ctx context.Context, failed <-chan struct{}) bool {
	select {
	case <-failed:
		return true
	default:
		return ctx.Err() != nil
	}
}

func (s *Scanner) scanRepository(ctx context.Context, logger lager.Logger, repository string) ([]ImageWithManifests, error) {
	defer s.metricsEmitter.TryEmitDurationFrom(logger, MetricRepositoryScanTime, time.Now())

	images, err := s.discoverer.Discover(ctx, logger, repository)
	if err != nil {
		return nil, errorspkg.Wrapf(err, "discovering images of `%s`", repository)
	}

	resolved, err := s.resolver.Resolve(ctx, logger, repository, images)
	if err != nil {
		return nil, errorspkg.Wrapf(err, "resolving `%s`", repository)
	}

	return resolved, nil
}

func (s *Scanner) emit(logger lager.Logger, result repositoryResult) error {
	logger.Info("repository-resolved", lager.Data{"repository": result.repository, "images": len(result.images)})

	for _, image := range result.images {
		if err := s.sink.Emit(image); err != nil {
			return errorspkg.Wrapf(err, "writing image %s", image.Image.ManifestDigest)
		}
	}

	return errorspkg.Wrapf(s.sink.Flush(), "flushing `%s`", result.repository)
}

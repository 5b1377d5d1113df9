package inventory

import (
	"context"
	"sort"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gobwas/glob"
	errorspkg "github.com/pkg/errors"
)

//go:generate counterfeiter . RepositoryFilter

type RepositoryFilter interface {
	List(ctx context.Context, logger lager.Logger) ([]string, error)
}

type RepositoryLister struct {
	client          RegistryClient
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	pageSize        int
}

func NewRepositoryLister(client RegistryClient, include, exclude []string, pageSize int) (*RepositoryLister, error) {
	includePatterns, err := compilePatterns(include)
	if err != nil {
		return nil, errorspkg.Wrap(err, "invalid include pattern")
	}

	excludePatterns, err := compilePatterns(exclude)
	if err != nil {
		return nil, errorspkg.Wrap(err, "invalid exclude pattern")
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &RepositoryLister{
		client:          client,
		includePatterns: includePatterns,
		excludePatterns: excludePatterns,
		pageSize:        pageSize,
	}, nil
}

func (l *RepositoryLister) List(ctx context.Context, logger lager.Logger) ([]string, error) {
	logger = logger.Session("listing-repositories")
	logger.Info("starting")
	defer logger.Info("ending")

	selected := map[string]struct{}{}
	pageToken := ""
	for {
		page, err := l.client.ListRepositories(ctx, logger, l.pageSize, pageToken)
		if err != nil {
			logger.Error("listing-repositories-failed", err)
			return nil, errorspkg.Wrap(transportErr(err), "listing repositories")
		}

		for _, name := range page.RepositoryNames {
			if l.selects(logger, name) {
				selected[name] = struct{}{}
			}
		}

		if page.NextToken == "" {
			break
		}
		if page.NextToken == pageToken {
			return nil, NewProtocolErr(errorspkg.Errorf("registry repeated page token `%s`", pageToken))
		}
		pageToken = page.NextToken
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Debug("listed-repositories", lager.Data{"repositories": names})
	return names, nil
}

// selects lets a matching exclude pattern win over any include pattern, and
// keeps only names matching an include pattern when include patterns exist.
func (l *RepositoryLister) selects(logger lager.Logger, name string) bool {
	if len(l.includePatterns) == 0 && len(l.excludePatterns) == 0 {
		return true
	}

	if matchesAny(l.excludePatterns, name) {
		logger.Debug("exclude-pattern-matched", lager.Data{"repository": name})
		return false
	}

	if len(l.includePatterns) == 0 {
		return true
	}

	if matchesAny(l.includePatterns, name) {
		logger.Debug("include-pattern-matched", lager.Data{"repository": name})
		return true
	}

	logger.Debug("no-pattern-matched", lager.Data{"repository": name})
	return false
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errorspkg.Wrapf(err, "compiling `%s`", pattern)
		}
		globs = append(globs, g)
	}

	return globs, nil
}

func matchesAny(patterns []glob.Glob, name string) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}

package fetcher // import "code.cloudfoundry.org/regscan/fetcher"

import (
	"context"
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/fetcher/distribution"
	"code.cloudfoundry.org/regscan/fetcher/ecr"
	"code.cloudfoundry.org/regscan/inventory"
	errorspkg "github.com/pkg/errors"
)

type RegistrySpec struct {
	URL                string
	InsecureRegistries []string
	BatchLimit         int
}

// NewRegistryClient picks the client for the registry URL scheme:
// ecr://[region] for Amazon ECR, docker://host or oci://host for any
// distribution registry.
func NewRegistryClient(ctx context.Context, logger lager.Logger, spec RegistrySpec) (inventory.RegistryClient, error) {
	logger = logger.Session("new-registry-client", lager.Data{"url": spec.URL})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if spec.URL == "" {
		return nil, errorspkg.New("registry url is required")
	}

	registryURL, err := url.Parse(spec.URL)
	if err != nil {
		return nil, errorspkg.Wrapf(err, "parsing registry url `%s`", spec.URL)
	}

	switch registryURL.Scheme {
	case "ecr":
		api, err := ecr.NewAPI(ctx, registryURL.Host)
		if err != nil {
			logger.Error("creating-ecr-api-failed", err)
			return nil, err
		}
		logger.Debug("using-ecr", lager.Data{"region": registryURL.Host})
		return ecr.NewClient(api), nil

	case "docker", "oci":
		host := registryURL.Host
		if host == "" {
			return nil, errorspkg.Errorf("registry url `%s` has no host", spec.URL)
		}
		insecure := isInsecure(host, spec.InsecureRegistries)
		logger.Debug("using-distribution", lager.Data{"host": host, "insecure": insecure})
		return distribution.NewClient(distribution.NewRegClient(logger, host, insecure), host, spec.BatchLimit), nil

	default:
		return nil, errorspkg.Errorf("unsupported registry url scheme `%s`, expected ecr, docker or oci", registryURL.Scheme)
	}
}

func isInsecure(host string, insecureRegistries []string) bool {
	for _, insecure := range insecureRegistries {
		if strings.EqualFold(insecure, host) {
			return true
		}
	}

	return false
}

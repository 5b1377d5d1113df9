package ecr // import "code.cloudfoundry.org/regscan/fetcher/ecr"

import (
	"context"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/inventory"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ecrpkg "github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
	digestpkg "github.com/opencontainers/go-digest"
	errorspkg "github.com/pkg/errors"
)

// BatchLimit is the most image ids BatchGetImage accepts in one call.
const BatchLimit = 100

//go:generate counterfeiter . API

type API interface {
	DescribeRepositories(ctx context.Context, params *ecrpkg.DescribeRepositoriesInput, optFns ...func(*ecrpkg.Options)) (*ecrpkg.DescribeRepositoriesOutput, error)
	DescribeImages(ctx context.Context, params *ecrpkg.DescribeImagesInput, optFns ...func(*ecrpkg.Options)) (*ecrpkg.DescribeImagesOutput, error)
	BatchGetImage(ctx context.Context, params *ecrpkg.BatchGetImageInput, optFns ...func(*ecrpkg.Options)) (*ecrpkg.BatchGetImageOutput, error)
}

type Client struct {
	api API
}

func NewClient(api API) *Client {
	return &Client{api: api}
}

// NewAPI loads the default AWS configuration chain. An empty region keeps
// whatever region the chain resolves.
func NewAPI(ctx context.Context, region string) (*ecrpkg.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errorspkg.Wrap(err, "loading aws configuration")
	}

	return ecrpkg.NewFromConfig(cfg), nil
}

func (c *Client) BatchLimit() int {
	return BatchLimit
}

func (c *Client) ListRepositories(ctx context.Context, logger lager.Logger, pageSize int, pageToken string) (inventory.RepositoryPage, error) {
	logger = logger.Session("ecr-describe-repositories")
	logger.Debug("starting")
	defer logger.Debug("ending")

	output, err := c.api.DescribeRepositories(ctx, &ecrpkg.DescribeRepositoriesInput{
		MaxResults: maxResults(pageSize),
		NextToken:  nextToken(pageToken),
	})
	if err != nil {
		return inventory.RepositoryPage{}, errorspkg.Wrap(err, "describing repositories")
	}

	names := make([]string, 0, len(output.Repositories))
	for _, repository := range output.Repositories {
		names = append(names, aws.ToString(repository.RepositoryName))
	}

	return inventory.RepositoryPage{
		RepositoryNames: names,
		NextToken:       aws.ToString(output.NextToken),
	}, nil
}

func (c *Client) ListImages(ctx context.Context, logger lager.Logger, repository string, pageSize int, pageToken string) (inventory.ImagePage, error) {
	logger = logger.Session("ecr-describe-images", lager.Data{"repository": repository})
	logger.Debug("starting")
	defer logger.Debug("ending")

	output, err := c.api.DescribeImages(ctx, &ecrpkg.DescribeImagesInput{
		RepositoryName: aws.String(repository),
		Filter:         &types.DescribeImagesFilter{TagStatus: types.TagStatusAny},
		MaxResults:     maxResults(pageSize),
		NextToken:      nextToken(pageToken),
	})
	if err != nil {
		return inventory.ImagePage{}, errorspkg.Wrapf(err, "describing images of `%s`", repository)
	}

	details := make([]inventory.ImageDetail, 0, len(output.ImageDetails))
	for _, image := range output.ImageDetails {
		details = append(details, inventory.ImageDetail{
			RepositoryName:       aws.ToString(image.RepositoryName),
			ImageDigest:          aws.ToString(image.ImageDigest),
			ManifestMediaType:    aws.ToString(image.ImageManifestMediaType),
			ImageTags:            image.ImageTags,
			ImagePushedAt:        aws.ToTime(image.ImagePushedAt),
			LastRecordedPullTime: image.LastRecordedPullTime,
		})
	}

	return inventory.ImagePage{
		ImageDetails: details,
		NextToken:    aws.ToString(output.NextToken),
	}, nil
}

func (c *Client) BatchGetManifests(ctx context.Context, logger lager.Logger, repository string, digests []digestpkg.Digest) ([]inventory.ResolvedManifest, error) {
	logger = logger.Session("ecr-batch-get-image", lager.Data{"repository": repository, "count": len(digests)})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if len(digests) > BatchLimit {
		return nil, errorspkg.Errorf("requested %d manifests, batch limit is %d", len(digests), BatchLimit)
	}

	imageIDs := make([]types.ImageIdentifier, 0, len(digests))
	for _, digest := range digests {
		imageIDs = append(imageIDs, types.ImageIdentifier{ImageDigest: aws.String(digest.String())})
	}

	output, err := c.api.BatchGetImage(ctx, &ecrpkg.BatchGetImageInput{
		RepositoryName:     aws.String(repository),
		ImageIds:           imageIDs,
		AcceptedMediaTypes: inventory.RecognizedMediaTypes,
	})
	if err != nil {
		return nil, errorspkg.Wrapf(err, "batch getting images of `%s`", repository)
	}

	for _, failure := range output.Failures {
		data := lager.Data{
			"code":   failure.FailureCode,
			"reason": aws.ToString(failure.FailureReason),
		}
		if failure.ImageId != nil {
			data["digest"] = aws.ToString(failure.ImageId.ImageDigest)
		}
		logger.Info("image-failure", data)
	}

	manifests := make([]inventory.ResolvedManifest, 0, len(output.Images))
	for _, image := range output.Images {
		if image.ImageId == nil {
			return nil, inventory.NewProtocolErr(errorspkg.Errorf("image without id returned for `%s`", repository))
		}

		digest, err := digestpkg.Parse(aws.ToString(image.ImageId.ImageDigest))
		if err != nil {
			return nil, inventory.NewProtocolErr(errorspkg.Wrapf(err, "image of `%s` returned with invalid digest", repository))
		}

		manifests = append(manifests, inventory.ResolvedManifest{
			Digest:    digest,
			Manifest:  aws.ToString(image.ImageManifest),
			MediaType: aws.ToString(image.ImageManifestMediaType),
		})
	}

	return manifests, nil
}

func maxResults(pageSize int) *int32 {
	if pageSize <= 0 {
		return nil
	}

	return aws.Int32(int32(pageSize))
}

func nextToken(pageToken string) *string {
	if pageToken == "" {
		return nil
	}

	return aws.String(pageToken)
}

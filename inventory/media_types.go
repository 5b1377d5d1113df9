package inventory

import (
	manifestpkg "github.com/containers/image/v5/manifest"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
)

type ManifestKind string

const (
	ManifestKindImage ManifestKind = "Image"
	ManifestKindList  ManifestKind = "List"
)

// RecognizedMediaTypes are the manifest media types the inventory accepts,
// images first.
var RecognizedMediaTypes = []string{
	specsv1.MediaTypeImageManifest,
	manifestpkg.DockerV2Schema2MediaType,
	specsv1.MediaTypeImageIndex,
	manifestpkg.DockerV2ListMediaType,
}

func ClassifyMediaType(mediaType string) (ManifestKind, bool) {
	switch mediaType {
	case specsv1.MediaTypeImageManifest, manifestpkg.DockerV2Schema2MediaType:
		return ManifestKindImage, true
	case specsv1.MediaTypeImageIndex, manifestpkg.DockerV2ListMediaType:
		return ManifestKindList, true
	default:
		return "", false
	}
}

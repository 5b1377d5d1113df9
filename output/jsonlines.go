package output // import "code.cloudfoundry.org/regscan/output"

import (
	"bufio"
	"encoding/json"
	"io"

	"code.cloudfoundry.org/regscan/inventory"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
	errorspkg "github.com/pkg/errors"
)

// Record is one line of the inventory: a single concrete manifest together
// with the image it was reached from.
type Record struct {
	RepositoryName       string              `json:"repository_name"`
	ImageDigest          string              `json:"image_digest"`
	ImageTags            []string            `json:"image_tags"`
	Manifest             specsv1.Manifest    `json:"manifest"`
	Descriptor           *specsv1.Descriptor `json:"descriptor,omitempty"`
	ImagePushedAt        int64               `json:"image_pushed_at"`
	LastRecordedPullTime *int64              `json:"last_recorded_pull_time,omitempty"`
}

// JSONLinesSink is not safe for concurrent use; the scanner writes through a
// single goroutine.
type JSONLinesSink struct {
	writer  *bufio.Writer
	encoder *json.Encoder
}

func NewJSONLinesSink(w io.Writer) *JSONLinesSink {
	writer := bufio.NewWriter(w)
	return &JSONLinesSink{
		writer:  writer,
		encoder: json.NewEncoder(writer),
	}
}

func (s *JSONLinesSink) Emit(image inventory.ImageWithManifests) error {
	for _, record := range Records(image) {
		if err := s.encoder.Encode(record); err != nil {
			return errorspkg.Wrapf(err, "encoding record of %s", image.Image.ManifestDigest)
		}
	}

	return nil
}

func (s *JSONLinesSink) Flush() error {
	return errorspkg.Wrap(s.writer.Flush(), "flushing output")
}

func Records(image inventory.ImageWithManifests) []Record {
	tags := image.Image.ImageTags
	if tags == nil {
		tags = []string{}
	}

	var pushedAt int64
	if !image.Image.ImagePushedAt.IsZero() {
		pushedAt = image.Image.ImagePushedAt.Unix()
	}

	var lastPull *int64
	if image.Image.LastRecordedPullTime != nil {
		t := image.Image.LastRecordedPullTime.Unix()
		lastPull = &t
	}

	records := make([]Record, 0, len(image.Manifests))
	for _, entry := range image.Manifests {
		records = append(records, Record{
			RepositoryName:       image.Image.RepositoryName,
			ImageDigest:          image.Image.ManifestDigest.String(),
			ImageTags:            tags,
			Manifest:             entry.Manifest,
			Descriptor:           entry.Descriptor,
			ImagePushedAt:        pushedAt,
			LastRecordedPullTime: lastPull,
		})
	}

	return records
}

package config

import (
	"strings"

	"github.com/gobwas/glob"
	errorspkg "github.com/pkg/errors"
)

var logLevels = []string{"debug", "info", "error", "fatal"}

func ValidateLogLevel(level string) error {
	for _, known := range logLevels {
		if strings.EqualFold(level, known) {
			return nil
		}
	}

	return errorspkg.Errorf("invalid argument: log level `%s`, expected one of %s", level, strings.Join(logLevels, ", "))
}

func ValidateGlobs(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := glob.Compile(pattern); err != nil {
			return errorspkg.Wrapf(err, "pattern `%s`", pattern)
		}
	}

	return nil
}

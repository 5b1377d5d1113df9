package metrics // import "code.cloudfoundry.org/regscan/metrics"

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/dropsonde"
	"github.com/cloudfoundry/dropsonde/metrics"
	errorspkg "github.com/pkg/errors"
)

const dropsondeOrigin = "regscan"

//go:generate counterfeiter . SystemReporter

type SystemReporter interface {
	Report(logger lager.Logger, name string, duration time.Duration)
}

// Emitter sends durations to metron. Emission failures are logged and never
// returned to the caller.
type Emitter struct {
	systemReporter SystemReporter
	enabled        bool
}

func NewEmitter(metronEndpoint string, systemReporter SystemReporter) (*Emitter, error) {
	if err := dropsonde.Initialize(metronEndpoint, dropsondeOrigin); err != nil {
		return nil, errorspkg.Wrap(err, "initializing dropsonde")
	}

	return &Emitter{systemReporter: systemReporter, enabled: true}, nil
}

// NewLogOnlyEmitter is used when no metron endpoint is configured: durations
// only reach the system reporter.
func NewLogOnlyEmitter(systemReporter SystemReporter) *Emitter {
	return &Emitter{systemReporter: systemReporter}
}

func (e *Emitter) EmitDuration(name string, duration time.Duration) error {
	if !e.enabled {
		return nil
	}

	return metrics.SendValue(name, float64(duration), "nanos")
}

func (e *Emitter) TryEmitDuration(logger lager.Logger, name string, duration time.Duration) {
	if e.systemReporter != nil {
		e.systemReporter.Report(logger, name, duration)
	}

	if err := e.EmitDuration(name, duration); err != nil {
		logger.Error("failed-to-emit-metric", err, lager.Data{
			"name":     name,
			"duration": duration,
		})
	}
}

func (e *Emitter) TryEmitDurationFrom(logger lager.Logger, name string, from time.Time) {
	e.TryEmitDuration(logger, name, time.Since(from))
}

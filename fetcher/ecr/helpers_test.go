package ecr_test

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type noopProgress struct{}

func (noopProgress) SetTotal(int) {}

func (noopProgress) Increment(int) {}

type noopMetrics struct{}

func (noopMetrics) TryEmitDuration(lager.Logger, string, time.Duration) {}
func (noopMetrics) TryEmitDurationFrom(lager.Logger, string, time.Time) {}

package systemreporter // import "code.cloudfoundry.org/regscan/metrics/systemreporter"

import (
	"runtime"
	"time"

	"code.cloudfoundry.org/lager/v3"
	units "github.com/docker/go-units"
)

// LogBased logs a snapshot of the process when an operation takes at least
// threshold. A non-positive threshold disables it.
type LogBased struct {
	threshold time.Duration
	snapshot  func() Report
}

func NewLogBased(threshold time.Duration) *LogBased {
	return &LogBased{
		threshold: threshold,
		snapshot:  takeSnapshot,
	}
}

func (r *LogBased) Report(logger lager.Logger, name string, duration time.Duration) {
	if r.threshold <= 0 || duration < r.threshold {
		return
	}

	logger = logger.Session("system-reporter", lager.Data{"metric": name, "duration": duration})
	logger.Info("threshold-reached", lager.Data{"report": r.snapshot()})
}

func takeSnapshot() Report {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Report{
		Goroutines:   runtime.NumGoroutine(),
		CPUs:         runtime.NumCPU(),
		HeapAlloc:    units.HumanSize(float64(memStats.HeapAlloc)),
		HeapObjects:  memStats.HeapObjects,
		Sys:          units.HumanSize(float64(memStats.Sys)),
		NumGC:        memStats.NumGC,
		GCPauseTotal: time.Duration(memStats.PauseTotalNs).String(),
	}
}

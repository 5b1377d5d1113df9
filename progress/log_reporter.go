package progress // import "code.cloudfoundry.org/regscan/progress"

import (
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// LogReporter counts completed units of work and logs them at most once per
// interval. The final unit is always logged.
type LogReporter struct {
	logger   lager.Logger
	total    int
	interval time.Duration
	now      func() time.Time

	mutex    sync.Mutex
	done     int
	lastLogs time.Time
}

func NewLogReporter(logger lager.Logger, name string, total int, interval time.Duration) *LogReporter {
	return newLogReporter(logger, name, total, interval, time.Now)
}

func newLogReporter(logger lager.Logger, name string, total int, interval time.Duration, now func() time.Time) *LogReporter {
	return &LogReporter{
		logger:   logger.Session(name),
		total:    total,
		interval: interval,
		now:      now,
	}
}

// SetTotal replaces the total that progress is reported against. A zero
// total logs progress without a percentage.
func (r *LogReporter) SetTotal(total int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.total = total
}

func (r *LogReporter) Increment(n int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.done += n
	now := r.now()
	finished := r.total > 0 && r.done >= r.total
	if !finished && now.Sub(r.lastLogs) < r.interval {
		return
	}
	r.lastLogs = now

	data := lager.Data{"done": r.done}
	if r.total > 0 {
		data["total"] = r.total
		data["percent"] = r.done * 100 / r.total
	}
	r.logger.Info("progress", data)
}

func (r *LogReporter) Done() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.done
}

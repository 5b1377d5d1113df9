package progress_test

import (
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/regscan/progress"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LogReporter", func() {
	var (
		logger   *lagertest.TestLogger
		clock    time.Time
		reporter *progress.LogReporter
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("progress")
		clock = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		reporter = progress.NewLogReporterWithClock(logger, "repositories", 4, time.Second, func() time.Time {
			return clock
		})
	})

	It("logs done and percent", func() {
		reporter.Increment(1)

		Expect(logger.Logs()).To(HaveLen(1))
		Expect(logger.Logs()[0].Message).To(Equal("progress.repositories.progress"))
		Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("done", float64(1)))
		Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("percent", float64(25)))
		Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("total", float64(4)))
	})

	It("logs at most once per interval", func() {
		reporter.Increment(1)
		reporter.Increment(1)
		Expect(logger.Logs()).To(HaveLen(1))

		clock = clock.Add(2 * time.Second)
		reporter.Increment(0)
		Expect(logger.Logs()).To(HaveLen(2))
		Expect(logger.Logs()[1].Data).To(HaveKeyWithValue("done", float64(2)))
	})

	It("always logs the last unit", func() {
		reporter.Increment(1)
		reporter.Increment(3)

		Expect(logger.Logs()).To(HaveLen(2))
		Expect(logger.Logs()[1].Data).To(HaveKeyWithValue("percent", float64(100)))
	})

	Context("when the total is unknown", func() {
		BeforeEach(func() {
			reporter = progress.NewLogReporterWithClock(logger, "manifests", 0, time.Second, func() time.Time {
				return clock
			})
		})

		It("logs without a percentage", func() {
			reporter.Increment(7)

			Expect(logger.Logs()).To(HaveLen(1))
			Expect(logger.Logs()[0].Data).NotTo(HaveKey("percent"))
		})
	})

	Context("when the total is set after creation", func() {
		BeforeEach(func() {
			reporter = progress.NewLogReporterWithClock(logger, "repositories", 0, time.Second, func() time.Time {
				return clock
			})
			reporter.SetTotal(2)
		})

		It("logs the percentage against the new total", func() {
			reporter.Increment(1)

			Expect(logger.Logs()).To(HaveLen(1))
			Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("total", float64(2)))
			Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("percent", float64(50)))
		})

		It("always logs the last unit", func() {
			reporter.Increment(1)
			reporter.Increment(1)

			Expect(logger.Logs()).To(HaveLen(2))
			Expect(logger.Logs()[1].Data).To(HaveKeyWithValue("done", float64(2)))
			Expect(logger.Logs()[1].Data).To(HaveKeyWithValue("percent", float64(100)))
		})
	})

	It("is safe for concurrent use", func() {
		reporter = progress.NewLogReporter(logger, "manifests", 0, time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reporter.Increment(2)
			}()
		}
		wg.Wait()

		Expect(reporter.Done()).To(Equal(100))
	})
})

package relogger_test

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/regscan/relogger"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Relogger", func() {
	var logger *lagertest.TestLogger

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("relogger")
	})

	Describe("NewLogrus", func() {
		var logrusLogger *logrus.Logger

		BeforeEach(func() {
			logrusLogger = relogger.NewLogrus(logger)
		})

		It("relogs debug entries with a lager style action", func() {
			logrusLogger.WithField("host", "registry.example.com").Debug("Regclient initialized")

			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].Message).To(Equal("relogger.regclient-initialized"))
			Expect(logs[0].LogLevel).To(Equal(lager.DEBUG))
			Expect(logs[0].Data).To(HaveKeyWithValue("host", "registry.example.com"))
			Expect(logs[0].Data).To(HaveKey("original_timestamp"))
		})

		It("relogs warnings as info", func() {
			logrusLogger.WithField("err", "not found").Warn("Failed to load docker creds")

			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].Message).To(Equal("relogger.failed-to-load-docker-creds"))
			Expect(logs[0].LogLevel).To(Equal(lager.INFO))
			Expect(logs[0].Data).To(HaveKeyWithValue("err", "not found"))
		})

		It("relogs errors as lager errors", func() {
			logrusLogger.Error("Request failed")

			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].Message).To(Equal("relogger.request-failed"))
			Expect(logs[0].LogLevel).To(Equal(lager.ERROR))
			Expect(logs[0].Data).To(HaveKeyWithValue("error", "Request failed"))
		})

		It("relogs trace entries as debug", func() {
			logrusLogger.SetLevel(logrus.TraceLevel)
			logrusLogger.Trace("Sending request")

			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].LogLevel).To(Equal(lager.DEBUG))
		})
	})

	Describe("RelogBytes", func() {
		It("relogs lager lines keeping their message and data", func() {
			line := `{"timestamp":"1580000000.000000000","source":"regscan","message":"regscan.scan.starting","log_level":1,"data":{"repository":"web"}}` + "\n"
			relogger.RelogBytes(logger, []byte(line))

			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].Message).To(Equal("relogger.regscan.scan.starting"))
			Expect(logs[0].LogLevel).To(Equal(lager.INFO))
			Expect(logs[0].Data).To(HaveKeyWithValue("repository", "web"))
			Expect(logs[0].Data).To(HaveKey("original_timestamp"))
		})

		It("ignores lines that are neither lager nor logrus", func() {
			relogger.RelogBytes(logger, []byte("plain text\n"))

			Expect(logger.Logs()).To(BeEmpty())
		})
	})
})

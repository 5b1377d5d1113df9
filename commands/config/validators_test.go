package config_test

import (
	"code.cloudfoundry.org/regscan/commands/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validators", func() {
	Describe("ValidateLogLevel", func() {
		It("accepts known levels in any case", func() {
			Expect(config.ValidateLogLevel("DEBUG")).To(Succeed())
			Expect(config.ValidateLogLevel("error")).To(Succeed())
		})

		It("rejects unknown levels", func() {
			Expect(config.ValidateLogLevel("")).To(MatchError(ContainSubstring("expected one of debug, info, error, fatal")))
		})
	})

	Describe("ValidateGlobs", func() {
		It("accepts shell style globs", func() {
			Expect(config.ValidateGlobs([]string{"prod-*", "team/{a,b}/*", "v?"})).To(Succeed())
		})

		It("names the invalid pattern", func() {
			Expect(config.ValidateGlobs([]string{"ok", "bad-["})).To(MatchError(ContainSubstring("pattern `bad-[`")))
		})
	})
})

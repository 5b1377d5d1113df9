package distribution

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/relogger"
	"github.com/regclient/regclient"
	"github.com/regclient/regclient/config"
	"github.com/regclient/regclient/scheme/reg"
)

const userAgent = "regscan"

// NewRegClient talks plain HTTP to insecure registries and HTTPS to every
// other host. Credentials come from the docker config of the current user.
// Failed requests are not retried.
func NewRegClient(logger lager.Logger, host string, insecure bool) *regclient.RegClient {
	tls := config.TLSEnabled
	if insecure {
		tls = config.TLSDisabled
	}

	return regclient.New(
		regclient.WithConfigHost(config.Host{Name: host, TLS: tls}),
		regclient.WithDockerCreds(),
		regclient.WithUserAgent(userAgent),
		regclient.WithRegOpts(reg.WithRetryLimit(1)),
		regclient.WithLog(relogger.NewLogrus(logger.Session("regclient", lager.Data{"host": host}))),
	)
}

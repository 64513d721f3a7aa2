package adapter

import (
	"time"

	"github.com/MKhiriev/go-ligand/internal/config"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

const (
	connectTimeout = 3050 * time.Millisecond
	readTimeout    = 10 * time.Second
)

func newHTTPClient(settings *config.Settings) *utils.HTTPClient {
	return utils.NewHTTPClient(utils.HTTPClientConfig{
		ConnectTimeout: connectTimeout,
		ReadTimeout:    readTimeout,
		VerifySSL:      settings.VerifySSL(),
	})
}

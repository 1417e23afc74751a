package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/vakilai/legal-doc-api/internal/config"
)

var once sync.Once
var pooled *http.Client

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient returns the shared keep-alive client handed to provider
// SDKs so repeated AI round trips reuse connections.
func GetPooledClient() *http.Client {
	once.Do(func() {
		pooled = &http.Client{Transport: customTransport}
	})
	return pooled
}

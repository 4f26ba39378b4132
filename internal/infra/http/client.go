package http

import (
	"net"
	stdhttp "net/http"
	"time"
)

// NewClient returns the shared outbound client. Per-upstream deadlines come
// from the timeout given here; callers still pass a request context.
func NewClient(timeout time.Duration) *stdhttp.Client {
	transport := &stdhttp.Transport{
		Proxy: stdhttp.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &stdhttp.Client{Timeout: timeout, Transport: transport}
}

package util

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/ppiankov/identigen/internal/model"
)

// NewProxyFunc creates a proxy function from the HTTP options.
// Without explicit proxies it falls back to HTTP_PROXY/HTTPS_PROXY/NO_PROXY.
func NewProxyFunc(opts model.HTTPOptions) (func(*http.Request) (*url.URL, error), error) {
	if opts.HTTPProxy == "" && opts.HTTPSProxy == "" {
		return http.ProxyFromEnvironment, nil
	}

	httpProxy, err := parseProxy(opts.HTTPProxy)
	if err != nil {
		return nil, fmt.Errorf("http_proxy: %w", err)
	}
	httpsProxy, err := parseProxy(opts.HTTPSProxy)
	if err != nil {
		return nil, fmt.Errorf("https_proxy: %w", err)
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != nil {
			return httpsProxy, nil
		}
		if httpProxy != nil {
			return httpProxy, nil
		}
		return http.ProxyFromEnvironment(req)
	}, nil
}

func parseProxy(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy URL %q", raw)
	}
	return u, nil
}

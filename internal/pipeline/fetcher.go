package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/ppiankov/identigen/internal/util"
)

// ErrUnexpectedStatus is returned for any response other than 200 OK
var ErrUnexpectedStatus = errors.New("unexpected status")

const defaultTimeout = 10 * time.Second

// UserAgents are the client identities a request may present
var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; rv:54.0) Gecko/20100101 Firefox/54.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/83.0.4103.116 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.93 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; rv:40.0) Gecko/20100101 Firefox/40.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/78.0.3904.108 Safari/537.36 Edge/17.17134",
}

// Fetcher fetches the profile page. It makes exactly one request per call.
type Fetcher struct {
	client   *resty.Client
	maxBytes int64
}

// NewFetcher creates a Fetcher from the HTTP options
func NewFetcher(opts model.HTTPOptions) (*Fetcher, error) {
	proxy, err := util.NewProxyFunc(opts)
	if err != nil {
		return nil, fmt.Errorf("configure proxy: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy

	client := resty.New().
		SetTransport(transport).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")

	maxBytes := opts.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = model.DefaultConfig().HTTP.MaxBodyBytes
	}

	return &Fetcher{
		client:   client,
		maxBytes: maxBytes,
	}, nil
}

// Client exposes the underlying HTTP client for auxiliary requests
func (f *Fetcher) Client() *resty.Client {
	return f.client
}

// FetchResult contains the fetched HTML and metadata
type FetchResult struct {
	HTML        string
	StatusCode  int
	ContentType string
	UserAgent   string
	FinalURL    string
}

// PickUserAgent returns a random entry from UserAgents
func PickUserAgent() string {
	return UserAgents[rand.IntN(len(UserAgents))]
}

// Fetch retrieves rawURL with a randomly chosen User-Agent
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	return f.FetchAs(ctx, rawURL, PickUserAgent())
}

// FetchAs retrieves rawURL presenting userAgent
func (f *Fetcher) FetchAs(ctx context.Context, rawURL string, userAgent string) (*FetchResult, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", userAgent).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := rawURL
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		finalURL = raw.Request.URL.String()
	}

	return &FetchResult{
		HTML:        string(data),
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		UserAgent:   userAgent,
		FinalURL:    finalURL,
	}, nil
}

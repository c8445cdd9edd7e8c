package util

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
)

// ErrDisallowedByRobots is returned when robots.txt forbids the request
var ErrDisallowedByRobots = errors.New("disallowed by robots.txt")

// RobotsChecker checks robots.txt compliance, caching parsed files per host
type RobotsChecker struct {
	cache  *gocache.Cache
	client *resty.Client
}

// NewRobotsChecker creates a checker that reuses client for robots.txt requests
func NewRobotsChecker(client *resty.Client, ttl time.Duration) *RobotsChecker {
	return &RobotsChecker{
		cache:  gocache.New(ttl, 2*ttl),
		client: client,
	}
}

// CanFetch reports whether userAgent may fetch rawURL.
// An unreachable robots.txt allows the request.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string, userAgent string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Host == "" {
		return false, fmt.Errorf("parse URL: missing host in %q", rawURL)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	data, err := r.getRobotsData(ctx, parsed.Host, robotsURL)
	if err != nil {
		return true, nil
	}

	return data.TestAgent(parsed.RequestURI(), NormalizeUserAgent(userAgent)), nil
}

// Check returns ErrDisallowedByRobots when userAgent may not fetch rawURL
func (r *RobotsChecker) Check(ctx context.Context, rawURL string, userAgent string) error {
	allowed, err := r.CanFetch(ctx, rawURL, userAgent)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: %s", ErrDisallowedByRobots, rawURL)
	}
	return nil
}

// getRobotsData fetches and caches robots.txt data
func (r *RobotsChecker) getRobotsData(ctx context.Context, host string, robotsURL string) (*robotstxt.RobotsData, error) {
	if cached, found := r.cache.Get(host); found {
		return cached.(*robotstxt.RobotsData), nil
	}

	resp, err := r.client.R().
		SetContext(ctx).
		Get(robotsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}

	// 4xx allows everything, 5xx disallows everything
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.cache.SetDefault(host, data)
	return data, nil
}

// Clear drops all cached robots.txt data
func (r *RobotsChecker) Clear() {
	r.cache.Flush()
}

// NormalizeUserAgent extracts the product token used for robots.txt matching
func NormalizeUserAgent(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) > 0 {
		return strings.Split(parts[0], "/")[0]
	}
	return ua
}

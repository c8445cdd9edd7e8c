package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ppiankov/identigen/internal/model"
)

// BuildURL appends the advanced options to the base endpoint as query parameters
func BuildURL(baseURL string, opts model.AdvancedOptions) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", baseURL)
	}

	q := u.Query()
	q.Set("n[]", opts.NameSet)
	q.Set("c[]", opts.Country)
	q.Set("gen", opts.Gen)
	q.Set("age-min", opts.AgeMin)
	q.Set("age-max", opts.AgeMax)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Package mapurl expands shortened map links by following their
// redirect chain.
package mapurl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrNoFinalURL means the chain was followed but no usable destination
// came out of it.
var ErrNoFinalURL = errors.New("no final url")

type Resolver struct {
	Client *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{Client: http.DefaultClient}
}

// Resolve issues a GET for raw, lets the client follow redirects, and
// returns the final percent-decoded URL.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", ErrNoFinalURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return "", fmt.Errorf("mapurl: build request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mapurl: fetch: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.Request == nil || resp.Request.URL == nil {
		return "", ErrNoFinalURL
	}
	final := resp.Request.URL.String()

	// Percent-decode only; a literal + in the query is data, not a
	// space.
	if decoded, err := url.PathUnescape(final); err == nil {
		final = decoded
	}
	return final, nil
}

// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAllowedDomains are the merchants links may point to.
var DefaultAllowedDomains = []string{
	"example-ec.com",
	"rakuten.co.jp",
	"amazon.co.jp",
	"yahoo-shopping.jp",
	"issendo.jp",
}

// URLValidator checks merchant links against an allow-list.
type URLValidator struct {
	domains []string
}

// NewURLValidator normalizes domains. An empty list means DefaultAllowedDomains.
func NewURLValidator(domains []string) *URLValidator {
	if len(domains) == 0 {
		domains = DefaultAllowedDomains
	}
	v := &URLValidator{domains: make([]string, 0, len(domains))}
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(d, ".")))
		if d != "" {
			v.domains = append(v.domains, d)
		}
	}
	return v
}

// Domains returns the normalized allow-list.
func (v *URLValidator) Domains() []string {
	return append([]string(nil), v.domains...)
}

// Validate accepts https URLs whose host is an allowed domain or one of its
// subdomains, and returns the URL in canonical form.
func (v *URLValidator) Validate(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.User != nil {
		return "", fmt.Errorf("%w: credentials in url", ErrInvalidURL)
	}

	host := strings.ToLower(u.Hostname())
	for _, d := range v.domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return u.String(), nil
		}
	}
	return "", fmt.Errorf("%w: host %q", ErrInvalidURL, host)
}

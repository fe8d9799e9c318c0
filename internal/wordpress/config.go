package wordpress

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultUserAgent identifies the client to the WordPress site
const DefaultUserAgent = "wordpress-app/1.0"

// DefaultTimeout for API requests
const DefaultTimeout = 30 * time.Second

// Config holds WordPress connection settings
type Config struct {
	// BaseURL is the site root (e.g. https://example.com); all REST
	// endpoints are rooted under {BaseURL}/wp-json
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent sent with every request
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("WORDPRESS_URL")
	if baseURL == "" {
		return nil, errors.New("WORDPRESS_URL environment variable is required")
	}

	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	timeout := DefaultTimeout
	if t := os.Getenv("WORDPRESS_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("WORDPRESS_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}

// validateBaseURL checks the base URL parses and uses an HTTP scheme.
// A bad URL here would otherwise only surface later as a connection error
// on the first tool call.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid WORDPRESS_URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid WORDPRESS_URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid WORDPRESS_URL %q: missing host", raw)
	}
	return nil
}

package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/StevenSignal/dtek-schedule/core/schedule"
	"github.com/StevenSignal/dtek-schedule/infra/logger"
)

// Config defines the page source and transport limits.
type Config struct {
	URL            string `json:"url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
	MaxBodyBytes   int64  `json:"max_body_bytes"`
}

// SetDefaults applies the stock DTEK source parameters.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = "https://www.dtek-dnem.com.ua/ua/shutdowns"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 10 << 20
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("source url is required")
	}
	return nil
}

// HTTPFetcher retrieves the shutdowns page over plain HTTP with
// browser-like headers.
type HTTPFetcher struct {
	client *http.Client
	cfg    Config
	log    logger.Logger
}

// NewHTTPFetcher creates a fetcher from the source configuration.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cfg: cfg,
		log: logger.New("fetcher"),
	}
}

// Fetch performs a single GET of the configured URL. Non-200 statuses are
// returned in the Page for the pipeline to judge, not as errors.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*schedule.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "uk-UA,uk;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Warnf("close body: %v", cerr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &schedule.Page{Status: resp.StatusCode, Body: body}, nil
}

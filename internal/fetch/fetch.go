// Package fetch downloads job postings from the web and reduces them to plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
)

// DefaultTimeout bounds a single HTTP request
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is sent with every request
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeScreener/1.0)"

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 5 << 20

// Error represents a failure to retrieve or read a posting
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Renderer returns the HTML of a page after client-side scripts have run
type Renderer func(ctx context.Context, url string) (string, error)

// Posting is a job posting retrieved from a URL
type Posting struct {
	URL      string
	Platform Platform
	HTML     string
	Text     string
	Rendered bool // Text came from the Renderer rather than the plain HTTP response
	Metadata *ingestion.Metadata
}

// Fetcher retrieves job postings over HTTP, falling back to a Renderer for script-built pages.
type Fetcher struct {
	client    *http.Client
	userAgent string
	render    Renderer
	log       zerolog.Logger
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithUserAgent overrides DefaultUserAgent
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithRenderer enables the fallback for pages whose plain HTML carries too little text
func WithRenderer(r Renderer) Option {
	return func(f *Fetcher) { f.render = r }
}

// WithLogger sets the logger used for fetch diagnostics
func WithLogger(l zerolog.Logger) Option {
	return func(f *Fetcher) { f.log = l }
}

// New creates a Fetcher with DefaultTimeout and no renderer
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		log:       logger.Logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// JobPosting downloads rawURL and extracts the description text using the selectors of the
// detected job board. When the text is shorter than MinContentLength and a Renderer is set,
// the page is rendered and extracted again.
func (f *Fetcher) JobPosting(ctx context.Context, rawURL string) (*Posting, error) {
	html, err := f.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(rawURL)
	posting := &Posting{URL: rawURL, Platform: platform, HTML: html}
	if posting.Text, err = extract(html, platform); err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to extract text", Cause: err}
	}

	if ShouldUseBrowser(posting.Text) && f.render != nil {
		f.log.Info().Str("url", rawURL).Int("text_length", len(posting.Text)).Msg("page text too short, rendering in browser")
		rendered, err := f.render(ctx, rawURL)
		if err != nil {
			return nil, &Error{URL: rawURL, Message: "browser rendering failed", Cause: err}
		}
		text, err := extract(rendered, platform)
		if err != nil {
			return nil, &Error{URL: rawURL, Message: "failed to extract rendered text", Cause: err}
		}
		posting.HTML, posting.Text, posting.Rendered = rendered, text, true
	}

	if posting.Text == "" {
		return nil, &Error{URL: rawURL, Message: "no text content found"}
	}

	posting.Text = ingestion.CleanText(posting.Text)
	posting.Metadata = ingestion.NewMetadata(rawURL, "html", []byte(posting.HTML))

	f.log.Info().
		Str("url", rawURL).
		Str("platform", string(platform)).
		Bool("rendered", posting.Rendered).
		Int("text_length", len(posting.Text)).
		Msg("fetched job posting")
	return posting, nil
}

func extract(html string, platform Platform) (string, error) {
	return ingestion.HTMLToTextWith(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform))
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitevoice"
)

// MaxSitemapStoryURLs caps how many story URLs one sitemap contributes.
const MaxSitemapStoryURLs = 10

// Ensure SitemapService implements sitevoice.StoryURLSource.
var _ sitevoice.StoryURLSource = (*SitemapService)(nil)

// SitemapService discovers customer-story URLs from a site's sitemap.xml.
// It supplements the fixed conventional paths probed by the secondary-page
// discoverer; sitemap failures are expected and recovered by the caller.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: DefaultUserAgent}
}

// DiscoverStoryURLs fetches <base>/sitemap.xml and returns same-host URLs
// whose path contains a customer-story keyword, capped at
// MaxSitemapStoryURLs. Returns an empty slice when the sitemap is missing
// or carries no story URLs.
func (s *SitemapService) DiscoverStoryURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitevoice.Errorf(sitevoice.EINVALID, "invalid base URL: %v", err)
	}

	sitemapURL := *base
	sitemapURL.Path = "/sitemap.xml"
	sitemapURL.RawQuery = ""
	sitemapURL.Fragment = ""

	body, err := s.get(ctx, sitemapURL.String())
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	var urls []string
	seen := make(map[string]bool)
	for _, loc := range doc.FindElements("//urlset/url/loc") {
		raw := strings.TrimSpace(loc.Text())
		u, err := url.Parse(raw)
		if err != nil || u.Host != base.Host {
			continue
		}
		if !isStoryPath(u.Path) || seen[raw] {
			continue
		}
		seen[raw] = true
		urls = append(urls, raw)
		if len(urls) >= MaxSitemapStoryURLs {
			break
		}
	}

	return urls, nil
}

func (s *SitemapService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// isStoryPath reports whether a URL path looks like customer-story content.
func isStoryPath(path string) bool {
	lower := strings.ToLower(path)
	for _, keyword := range sitevoice.StoryPathKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

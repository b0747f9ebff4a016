package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sitehttp "github.com/fwojciec/sitevoice/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sitemapXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/customers/acme</loc></url>
  <url><loc>%s/pricing</loc></url>
  <url><loc>%s/case-studies/beta</loc></url>
  <url><loc>%s/customers/acme</loc></url>
  <url><loc>https://other.example.com/customers/gamma</loc></url>
</urlset>`

func TestSitemapService_DiscoverStoryURLs(t *testing.T) {
	t.Parallel()

	t.Run("returns same-host story URLs deduplicated", func(t *testing.T) {
		t.Parallel()

		var srvURL string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.URL.Path != "/sitemap.xml" {
				nethttp.NotFound(w, r)
				return
			}
			w.Write([]byte(strings.ReplaceAll(sitemapXML, "%s", srvURL)))
		}))
		defer srv.Close()
		srvURL = srv.URL

		s := sitehttp.NewSitemapService(nil)
		urls, err := s.DiscoverStoryURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{
			srv.URL + "/customers/acme",
			srv.URL + "/case-studies/beta",
		}, urls)
	})

	t.Run("missing sitemap is an error for the caller to swallow", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(nethttp.NotFound))
		defer srv.Close()

		s := sitehttp.NewSitemapService(nil)
		_, err := s.DiscoverStoryURLs(context.Background(), srv.URL)
		assert.Error(t, err)
	})

	t.Run("invalid XML is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("<urlset><url><loc>broken"))
		}))
		defer srv.Close()

		s := sitehttp.NewSitemapService(nil)
		_, err := s.DiscoverStoryURLs(context.Background(), srv.URL)
		assert.Error(t, err)
	})
}

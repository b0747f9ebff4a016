package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Title(t *testing.T) {
	t.Parallel()

	page, err := goquery.Parse(`<html><head><title>  Acme — Customer Platform  </title></head><body></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Acme — Customer Platform", page.Title())
}

func TestPage_MetaDescription(t *testing.T) {
	t.Parallel()

	t.Run("reads the description meta tag", func(t *testing.T) {
		t.Parallel()
		page, err := goquery.Parse(`<html><head><meta name="description" content="The platform for teams."></head></html>`)
		require.NoError(t, err)
		assert.Equal(t, "The platform for teams.", page.MetaDescription())
	})

	t.Run("falls back to og:description", func(t *testing.T) {
		t.Parallel()
		page, err := goquery.Parse(`<html><head><meta property="og:description" content="Social description."></head></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Social description.", page.MetaDescription())
	})

	t.Run("missing meta yields empty string", func(t *testing.T) {
		t.Parallel()
		page, err := goquery.Parse(`<html><head></head></html>`)
		require.NoError(t, err)
		assert.Empty(t, page.MetaDescription())
	})
}

func TestPage_Stats(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="stat-card">Over 10,000 teams trust us</div>
<div class="stat-card">Many teams trust us</div>
<span class="metric">99.9% uptime</span>
<p class="copy">Not a stat at all</p>
</body></html>`

	page, err := goquery.Parse(html)
	require.NoError(t, err)

	stats := page.Stats()
	assert.Equal(t, []string{"Over 10,000 teams trust us", "99.9% uptime"}, stats)
}

func TestPage_ValueProps(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="features">
  <h3>Instant onboarding</h3>
  <p>Go live in minutes, not weeks.</p>
  <p>Short</p>
</div>
</body></html>`

	page, err := goquery.Parse(html)
	require.NoError(t, err)

	props := page.ValueProps()
	assert.Contains(t, props, "Instant onboarding")
	assert.Contains(t, props, "Go live in minutes, not weeks.")
	assert.NotContains(t, props, "Short")
}

func TestPage_Images(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<img src="/logo.png" alt="Logo">
<img src="data:image/png;base64,AAAA" alt="Inline">
<img alt="No source">
</body></html>`

	page, err := goquery.Parse(html)
	require.NoError(t, err)

	images := page.Images()
	assert.Equal(t, []sitevoice.Image{{Src: "/logo.png", Alt: "Logo"}}, images)
}

func TestPage_Links(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<a href="/customers">Customer stories</a>
<a href="#top">Back to top</a>
<a href="javascript:void(0)">Click</a>
<a href="mailto:hi@example.com">Email</a>
<a href="tel:+15551234567">Call</a>
<a href="/pricing"></a>
</body></html>`

	page, err := goquery.Parse(html)
	require.NoError(t, err)

	links := page.Links()
	assert.Equal(t, []sitevoice.Link{{Href: "/customers", Text: "Customer stories"}}, links)
}

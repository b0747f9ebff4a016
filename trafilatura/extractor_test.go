package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitevoice.ContentExtractor at compile time.
var _ sitevoice.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Acme - Customer Platform</title>
<meta name="description" content="Acme helps teams collect customer feedback.">
</head>
<body>
<nav><a href="/">Home</a><a href="/pricing">Pricing</a></nav>
<main>
<h1>About Acme</h1>
<p>Acme was founded to make collecting customer feedback effortless for every team.</p>
</main>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		content, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, content.Title)
		assert.Contains(t, content.Text, "customer feedback effortless")
		assert.NotContains(t, content.Text, "Copyright 2026")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")
		require.Error(t, err)
	})
}

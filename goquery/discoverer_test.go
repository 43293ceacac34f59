package goquery_test

import (
	"context"
	"testing"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/Nityom/ai-pdf-assistant/goquery"
	"github.com/Nityom/ai-pdf-assistant/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
	}
}

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative and absolute links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<a href="a.pdf">A</a>
<a href="b.pdf">B</a>
<a href="https://other/c.pdf">C</a>
</body>
</html>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/a.pdf",
			"https://example.com/docs/b.pdf",
			"https://other/c.pdf",
		}, refs)
	})

	t.Run("resolves protocol-relative links against the base scheme", func(t *testing.T) {
		t.Parallel()

		html := `<a href="//cdn.example.com/files/report.pdf">report</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/files/report.pdf"}, refs)
	})

	t.Run("selects only links whose path ends in .pdf", func(t *testing.T) {
		t.Parallel()

		html := `<a href="page.html">page</a>
<a href="doc.pdf">doc</a>
<a href="archive.pdf.zip">archive</a>
<a href="/about">about</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/doc.pdf"}, refs)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		html := `<a href="upper.PDF">upper</a><a href="lower.pdf">lower</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/lower.pdf"}, refs)
	})

	t.Run("matches on the path ignoring the query string", func(t *testing.T) {
		t.Parallel()

		html := `<a href="report.pdf?v=2">report</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/report.pdf?v=2"}, refs)
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="doc.pdf">one</a><a href="doc.pdf">two</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Len(t, refs, 2)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="javascript:void(0)">js</a>
<a href="mailto:someone@example.com">mail</a>
<a href="doc.pdf">doc</a>`

		d := goquery.NewDiscoverer(fixedFetcher(html))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/doc.pdf"}, refs)
	})

	t.Run("returns empty result for page without PDF links", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDiscoverer(fixedFetcher(`<a href="index.html">home</a>`))
		refs, err := d.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetchErr := pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "HTTP 500 for https://example.com")
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fetchErr
			},
		}

		d := goquery.NewDiscoverer(fetcher)
		_, err := d.Discover(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pdfassistant.EUNAVAILABLE, pdfassistant.ErrorCode(err))
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDiscoverer(fixedFetcher(""))
		_, err := d.Discover(context.Background(), "not-a-url")

		require.Error(t, err)
		assert.Equal(t, pdfassistant.EINVALID, pdfassistant.ErrorCode(err))
	})
}

// Package goquery provides HTML link discovery using the goquery library.
package goquery

import (
	"context"
	"net/url"
	"strings"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Discoverer implements pdfassistant.LinkDiscoverer at compile time.
var _ pdfassistant.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds PDF links by scanning the anchor tags of a single page.
// Selection is purely by href suffix: the resolved path must end with the
// literal, case-sensitive extension ".pdf". There is no content-type
// sniffing and no recursion into linked pages. The case-sensitive match
// mirrors the reference behavior and is a known limitation, not a bug to
// fix here.
type Discoverer struct {
	fetcher pdfassistant.Fetcher
}

// NewDiscoverer creates a Discoverer that fetches pages with fetcher.
func NewDiscoverer(fetcher pdfassistant.Fetcher) *Discoverer {
	return &Discoverer{fetcher: fetcher}
}

// Discover fetches baseURL and returns the absolute URLs of all linked PDF
// resources in document order. Duplicate links are preserved.
func (d *Discoverer) Discover(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, pdfassistant.Errorf(pdfassistant.EINVALID, "invalid base URL %q", baseURL)
	}

	html, err := d.fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pdfassistant.Errorf(pdfassistant.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == nil {
			return
		}
		if !strings.HasSuffix(resolved.Path, ".pdf") {
			return
		}

		refs = append(refs, resolved.String())
	})

	return refs, nil
}

// resolveURL resolves href against base, handling relative,
// protocol-relative, and already-absolute links. Non-HTTP targets
// (javascript:, mailto:, etc.) resolve to nil.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}
	return resolved
}

package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"golang.org/x/sync/errgroup"
)

// DefaultDownloadTimeout is the default timeout for a single document download.
const DefaultDownloadTimeout = 60 * time.Second

// DefaultConcurrency is the default download fan-out limit.
const DefaultConcurrency = 4

// Ensure Downloader implements pdfassistant.Downloader at compile time.
var _ pdfassistant.Downloader = (*Downloader)(nil)

// Downloader retrieves remote documents into a store. Caching is keyed
// purely by filename, not content: a reference whose filename already
// exists in the store skips the network entirely, and two distinct URLs
// sharing a filename collide silently. This mirrors the reference
// behavior and is a known limitation.
//
// Downloads fan out across a bounded worker group. References are
// deduplicated by filename before dispatch, so at most one worker ever
// writes a given name.
type Downloader struct {
	store       pdfassistant.Store
	client      *http.Client
	limiter     *DomainLimiter
	concurrency int
	timeout     time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithConcurrency sets the download fan-out limit.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) DownloaderOption {
	return func(d *Downloader) {
		d.concurrency = n
	}
}

// WithDownloadTimeout sets the per-download timeout.
// Defaults to DefaultDownloadTimeout if not specified.
func WithDownloadTimeout(timeout time.Duration) DownloaderOption {
	return func(d *Downloader) {
		d.timeout = timeout
	}
}

// WithDomainLimiter sets a per-domain rate limiter applied before each
// download. No limiting is applied if unset.
func WithDomainLimiter(limiter *DomainLimiter) DownloaderOption {
	return func(d *Downloader) {
		d.limiter = limiter
	}
}

// NewDownloader creates a Downloader that persists documents in store.
func NewDownloader(store pdfassistant.Store, opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		store:       store,
		concurrency: DefaultConcurrency,
		timeout:     DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.client = &http.Client{
		Timeout: d.timeout,
	}

	return d
}

// task is one download unit after filename deduplication.
type task struct {
	position int
	ref      string
	name     string
	cached   bool
	err      error
}

// Download fetches each referenced resource into the store. Failed
// downloads are soft: they are reported through progress and omitted from
// the result, and the batch continues. Results follow reference order.
func (d *Downloader) Download(ctx context.Context, refs []string, progress pdfassistant.DownloadProgressFunc) ([]pdfassistant.LocalDocument, error) {
	// Deduplicate by filename up front; the first reference claims the name.
	claimed := make(map[string]bool)
	var tasks []*task
	for _, ref := range refs {
		name, err := FilenameFromURL(ref)
		if err != nil {
			tasks = append(tasks, &task{position: len(tasks), ref: ref, err: err})
			continue
		}
		if claimed[name] {
			continue
		}
		claimed[name] = true
		tasks = append(tasks, &task{position: len(tasks), ref: ref, name: name})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for _, t := range tasks {
		if t.err != nil {
			continue
		}
		t := t
		g.Go(func() error {
			if d.store.Exists(t.name) {
				t.cached = true
				return nil
			}
			t.err = d.download(gctx, t.ref, t.name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]pdfassistant.LocalDocument, 0, len(tasks))
	for i, t := range tasks {
		if progress != nil {
			progress(pdfassistant.DownloadProgress{
				URL:       t.ref,
				Filename:  t.name,
				Completed: i + 1,
				Total:     len(tasks),
				Cached:    t.cached,
				Err:       t.err,
			})
		}
		if t.err != nil {
			continue
		}
		docs = append(docs, pdfassistant.LocalDocument{
			Name:      t.name,
			SourceURL: t.ref,
			Cached:    t.cached,
		})
	}

	return docs, nil
}

// download performs one GET and persists the body atomically.
func (d *Downloader) download(ctx context.Context, ref, name string) error {
	if d.limiter != nil {
		u, err := url.Parse(ref)
		if err != nil {
			return pdfassistant.Errorf(pdfassistant.EINVALID, "invalid reference %q", ref)
		}
		if err := d.limiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !successStatus(resp.StatusCode) {
		return pdfassistant.Errorf(pdfassistant.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, ref)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return d.store.Write(name, data)
}

// FilenameFromURL derives a store filename from the final path segment of
// a resource URL.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pdfassistant.Errorf(pdfassistant.EINVALID, "invalid reference %q", rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", pdfassistant.Errorf(pdfassistant.EINVALID, "no filename in reference %q", rawURL)
	}
	return name, nil
}

package wiki

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/ui"
)

// Fetcher retrieves wiki pages as parsed documents. One GET per page, no
// retries; the client's timeout and User-Agent are configured by the caller.
type Fetcher struct {
	client *http.Client
	log    *ui.Logger
}

func NewFetcher(client *http.Client, log *ui.Logger) *Fetcher {
	return &Fetcher{client: client, log: log}
}

// Document fetches target and parses the body. Non-2xx responses are fetch
// failures. Also returns the body size for progress reporting.
func (f *Fetcher) Document(ctx context.Context, target string) (*goquery.Document, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", target, err)
	}

	return doc, int64(len(body)), nil
}

// ItemNameFromURL derives the item name from the page URL tail:
// percent-decoded, underscores turned back into spaces.
func ItemNameFromURL(pageURL string) string {
	tail := pageURL
	if i := strings.LastIndex(tail, "/"); i >= 0 {
		tail = tail[i+1:]
	}
	if decoded, err := url.PathUnescape(tail); err == nil {
		tail = decoded
	}
	return strings.TrimSpace(strings.ReplaceAll(tail, "_", " "))
}

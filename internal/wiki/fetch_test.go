package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gizmo3030/awakening-data/internal/ui"
	"github.com/gizmo3030/awakening-data/internal/util"
)

func TestItemNameFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://awakening.wiki/Fluted_Heavy_Lamp", want: "Fluted Heavy Lamp"},
		{in: "https://awakening.wiki/Sandcrawler%27s_Bench", want: "Sandcrawler's Bench"},
		{in: "https://awakening.wiki/Cistern", want: "Cistern"},
	}
	for _, tc := range tests {
		if got := ItemNameFromURL(tc.in); got != tc.want {
			t.Fatalf("ItemNameFromURL(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestFetcherDocumentSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><h1>Cistern</h1></body></html>`))
	}))
	defer srv.Close()

	log := ui.NewLogger(false)
	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:   5 * time.Second,
		UserAgent: "AwakeningDataExtractor/test",
	})

	doc, bytes, err := NewFetcher(client, log).Document(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	if gotUA != "AwakeningDataExtractor/test" {
		t.Fatalf("User-Agent=%q", gotUA)
	}
	if bytes == 0 {
		t.Fatalf("expected non-zero body size")
	}
	if title := doc.Find("h1").Text(); title != "Cistern" {
		t.Fatalf("h1=%q", title)
	}
}

func TestFetcherDocumentNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := util.NewHTTPClient(util.HTTPClientOptions{Timeout: 5 * time.Second})
	_, _, err := NewFetcher(client, ui.NewLogger(false)).Document(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

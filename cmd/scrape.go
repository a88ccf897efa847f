package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gizmo3030/awakening-data/internal/config"
	"github.com/gizmo3030/awakening-data/internal/items"
	"github.com/gizmo3030/awakening-data/internal/ui"
	"github.com/gizmo3030/awakening-data/internal/util"
	"github.com/gizmo3030/awakening-data/internal/wiki"

	"github.com/spf13/cobra"
)

var flagUpdate bool

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Build the placeables JSON from the wiki, or rework the existing snapshot offline",
		Run:   runScrape,
	}

	scrapeCmd.Flags().BoolVarP(&flagUpdate, "update", "u", false, "fetch fresh data from the wiki instead of reusing the snapshot")

	rootCmd.AddCommand(scrapeCmd)
}

// runScrape is the whole pipeline. Every fault inside it is caught and
// logged; the run always ends gracefully.
func runScrape(cmd *cobra.Command, _ []string) {
	logSvc := ui.NewLogger(flagDebug)

	cfg, usedPath, err := config.Load(flagConfig, config.Options{Debug: flagDebug})
	if err != nil {
		logSvc.Errorf("fatal: %v\n", err)
		return
	}
	logSvc.Debugf("config source: %s\n", usedPath)

	var set []items.Item
	if flagUpdate {
		set = scrapeFromWiki(cmd.Context(), cfg, logSvc)
	} else {
		set = loadSnapshot(cfg, logSvc)
	}

	set = items.Merge(set, cfg.ManualItems)
	set = items.EnsureConsumables(set)

	logSvc.Infof("save: writing %d items to %s\n", len(set), cfg.Output)
	if err := items.Save(cfg.Output, set); err != nil {
		logSvc.Errorf("save: %v\n", err)
		return
	}
	if info, err := os.Stat(cfg.Output); err == nil {
		logSvc.Infof("save: wrote %s to %s\n", util.Human(info.Size()), cfg.Output)
	}
	logSvc.Infof("done\n")
}

// scrapeFromWiki walks the category listing and scrapes every item page in
// order, one fetch at a time with a politeness delay between pages. A failed
// page is logged and skipped; the rest of the run continues.
func scrapeFromWiki(ctx context.Context, cfg *config.Config, logSvc *ui.Logger) []items.Item {
	if ctx == nil {
		ctx = context.Background()
	}

	logSvc.Infof("mode: update, polling %s\n", cfg.BaseURL)

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     cfg.Timeout(),
		UserAgent:   cfg.UserAgent,
		DebugLogger: logSvc,
	})
	fetcher := wiki.NewFetcher(client, logSvc)
	extractor := wiki.NewExtractor(logSvc)

	set := []items.Item{}

	logSvc.Infof("links: fetching placeable item links from %s\n", cfg.CategoryURL())
	catDoc, _, err := fetcher.Document(ctx, cfg.CategoryURL())
	if err != nil {
		logSvc.Errorf("links: fetching category page: %v\n", err)
		return set
	}

	links := wiki.ItemLinks(catDoc, cfg.BaseURL, logSvc)
	logSvc.Infof("links: found %d item links\n", len(links))
	if len(links) == 0 {
		return set
	}

	stats := &ui.Stats{}
	progress := ui.NewScrapeProgress("Placeables", len(links))
	defer progress.Close()

	for i, link := range links {
		if i > 0 {
			time.Sleep(cfg.FetchDelay())
		}

		logSvc.Debugf("item: processing %d/%d: %s\n", i+1, len(links), link)

		doc, bytes, err := fetcher.Document(ctx, link)
		if err != nil {
			logSvc.Errorf("page: could not scrape %s: %v\n", link, err)
			stats.PagesFailed.Add(1)
			progress.Step(0)
			continue
		}
		stats.PagesFetched.Add(1)
		stats.TotalBytes.Add(bytes)

		page := extractor.ExtractPage(doc)
		set = append(set, items.Item{
			Name:          wiki.ItemNameFromURL(link),
			Recipe:        page.Recipe,
			Power:         page.Power,
			WaterCapacity: page.WaterCapacity,
			Consumables:   page.Consumables,
		})
		stats.ItemsScraped.Add(1)
		progress.Step(bytes)
	}
	progress.Close()

	fmt.Println()
	fmt.Println("Scrape Summary:")
	fmt.Printf("Pages:  %d fetched, %d failed\n", stats.PagesFetched.Load(), stats.PagesFailed.Load())
	fmt.Printf("Items:  %d\n", stats.ItemsScraped.Load())
	fmt.Printf("Data:   %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Println()

	return set
}

// loadSnapshot reuses the previous run's output. Missing or unreadable
// snapshots degrade to an empty starting set.
func loadSnapshot(cfg *config.Config, logSvc *ui.Logger) []items.Item {
	logSvc.Infof("mode: offline, skipping external polling\n")

	set, err := items.Load(cfg.Output)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logSvc.Infof("load: no existing %s found; starting with empty set\n", cfg.Output)
	case err != nil:
		logSvc.Warnf("load: could not load existing %s: %v\n", cfg.Output, err)
	default:
		logSvc.Infof("load: loaded %d items from existing %s\n", len(set), cfg.Output)
	}

	return set
}

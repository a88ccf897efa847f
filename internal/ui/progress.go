package ui

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gizmo3030/awakening-data/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ScrapeProgress renders a single console bar tracking item pages processed
// during an update run.
type ScrapeProgress struct {
	p   *mpb.Progress
	bar *mpb.Bar

	bytes atomic.Int64
	start time.Time
}

func NewScrapeProgress(label string, total int) *ScrapeProgress {
	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(os.Stdout),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	sp := &ScrapeProgress{p: p, start: time.Now()}
	sp.bar = p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(label+"  "),
		),

		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d pages", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + util.Human(sp.bytes.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(sp.start).Seconds()))
			}),
		),
	)

	return sp
}

func (sp *ScrapeProgress) Step(bytes int64) {
	sp.bytes.Add(bytes)
	sp.bar.Increment()
}

func (sp *ScrapeProgress) Close() {
	sp.bar.Abort(false)
	sp.p.Wait()
}

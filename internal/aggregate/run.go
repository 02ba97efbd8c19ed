package aggregate

import (
	"time"

	"github.com/mwaldt/clinespend/internal/logger"
	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/pricing"
	"github.com/mwaldt/clinespend/internal/scan"
	"github.com/mwaldt/clinespend/internal/stats"
)

// Options configures a run.
type Options struct {
	// Pricing defaults to the built-in rate table.
	Pricing pricing.Table
	// Location sets the timezone for calendar grouping. Defaults to the
	// local timezone, matching developer-session day boundaries.
	Location *time.Location
}

func (o *Options) applyDefaults() {
	if o.Pricing == nil {
		o.Pricing = pricing.DefaultTable()
	}
	if o.Location == nil {
		o.Location = time.Local
	}
}

// Run performs one full scan of the tasks directory and derives every
// statistic from scratch. All folder-level failures are absorbed as skips;
// only a missing base path is returned as an error, alongside an all-zero
// report so callers can still render.
func Run(basePath string, opts Options) (*models.Report, error) {
	opts.applyDefaults()
	report := models.NewReport(basePath)

	folders, err := scan.ListFolders(basePath)
	if err != nil {
		finalize(report, opts)
		return report, err
	}

	agg := New()
	for _, dir := range folders {
		folder, err := scan.LoadFolder(dir)
		if err != nil {
			logger.Debug("skipping task folder", "path", dir, "reason", err)
			agg.SkipFolder()
			continue
		}
		agg.AddFolder(folder.Tier, folder.Events)
	}

	agg.fill(report)
	finalize(report, opts)

	logger.Info("scan complete",
		"path", basePath,
		"processed", report.Counters.Processed,
		"skipped", report.Counters.Skipped,
		"entries", report.Counters.Entries,
		"total_cost", report.TotalCost)
	return report, nil
}

func finalize(report *models.Report, opts Options) {
	report.TierCosts, report.TotalCost = opts.Pricing.TierCosts(report.Totals)
	report.Period = stats.Period(report.TotalCost, report.Timestamps, opts.Location)
	report.Daily = stats.Daily(report.Records, opts.Pricing, opts.Location)
}

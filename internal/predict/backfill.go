package predict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/glo"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/schedule"
	"github.com/Satayu47/Thai-Lottery-Prediction/pkg/ratelimiter"
	"github.com/Satayu47/Thai-Lottery-Prediction/pkg/retry"
)

// Per-date fetch retry budget. Missing draws return ErrNoResult and are
// never retried. Every attempt against the public API waits for a pace
// token first.
const (
	backfillRetryInterval = 150 * time.Millisecond
	backfillRetryBudget   = 1500 * time.Millisecond
	backfillPaceInterval  = 100 * time.Millisecond
)

// BackfillSummary reports one mining pass over past years.
type BackfillSummary struct {
	Target   history.Date     `json:"target"`
	Checked  int              `json:"checked"`
	Found    int              `json:"found"`
	Inserted int              `json:"inserted"`
	Missing  []int            `json:"missing_years,omitempty"`
	Records  []history.Record `json:"records,omitempty"`
}

// Backfill mines past years' published results for the upcoming draw's
// month and day and folds everything found into the store. Fetches run
// concurrently, bounded by concurrency; years without a published draw are
// reported as missing, not failed. Records and Missing come back
// oldest-year first.
func (s *Service) Backfill(ctx context.Context, years, concurrency int) (*BackfillSummary, error) {
	if years <= 0 {
		years = 10
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	draw := schedule.NextDraw(s.now())
	month, day := draw.Date.Month(), draw.Date.Day()
	newestYear := s.now().Year() - 1

	limiter := ratelimiter.New(backfillPaceInterval, concurrency)
	defer limiter.Stop()

	found := make([]*history.Record, years)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < years; i++ {
		i := i
		year := newestYear - i
		g.Go(func() error {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

			var result *glo.LatestDraw
			err := retry.Exponential(gctx, func() error {
				if werr := limiter.Wait(gctx); werr != nil {
					return retry.Permanent(werr)
				}
				r, ferr := s.client.FetchResult(gctx, date)
				if ferr != nil {
					if errors.Is(ferr, glo.ErrNoResult) {
						return retry.Permanent(ferr)
					}
					return ferr
				}
				result = r
				return nil
			}, retry.ExponentialConfig{
				InitialInterval: backfillRetryInterval,
				MaxElapsedTime:  backfillRetryBudget,
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Debug("No result for year", "year", year, "err", err)
				return nil
			}

			found[i] = &history.Record{Date: history.DateOf(date), Number: result.Number}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("backfill aborted: %w", err)
	}

	summary := &BackfillSummary{Target: history.DateOf(draw.Date), Checked: years}

	// Fold in oldest first so newer draws sit nearer the head.
	for i := years - 1; i >= 0; i-- {
		year := newestYear - i
		rec := found[i]
		if rec == nil {
			summary.Missing = append(summary.Missing, year)
			continue
		}
		summary.Found++
		summary.Records = append(summary.Records, *rec)

		inserted, err := s.store.InsertIfNew(*rec)
		if err != nil {
			return nil, fmt.Errorf("failed to store backfilled draw: %w", err)
		}
		if inserted {
			summary.Inserted++
		}
	}

	logger.Info("Backfill complete",
		"target", summary.Target.String(),
		"checked", summary.Checked,
		"found", summary.Found,
		"inserted", summary.Inserted)
	return summary, nil
}

package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

const watchInterval = 12 * time.Hour

type ContractCounter interface {
	CountEndingBetween(from, to string) (int64, error)
}

// ExpiryWatcher periodically logs how many active contracts expire within
// the 45/60/90 day windows, the same numbers the dashboard serves.
type ExpiryWatcher struct {
	contractRepo ContractCounter
}

func NewExpiryWatcher(repo ContractCounter) *ExpiryWatcher {
	return &ExpiryWatcher{contractRepo: repo}
}

func (w *ExpiryWatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	log.Info("Contract expiry watcher cron started")
	w.report()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping contract expiry watcher...")
			return
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ExpiryWatcher) report() {
	today := time.Now().UTC().Format(time.DateOnly)

	for _, days := range []int{45, 60, 90} {
		limit := time.Now().UTC().AddDate(0, 0, days).Format(time.DateOnly)
		count, err := w.contractRepo.CountEndingBetween(today, limit)
		if err != nil {
			log.Errorf("Watcher: failed to count contracts ending within %d days: %v", days, err)
			return
		}

		if count > 0 {
			log.Infof("Watcher: %d active contracts expire within %d days", count, days)
		}
	}
}

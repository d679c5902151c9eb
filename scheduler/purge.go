package scheduler

import (
	"context"
	"fmt"
	"time"
)

const PurgeJobName = "purge-cancelled-bookings"

type CancelledPurger interface {
	PurgeCancelled(ctx context.Context, retention time.Duration) (int64, error)
}

// PurgeCancelledTask hard-deletes bookings cancelled more than retention ago.
func PurgeCancelledTask(ctx context.Context, purger CancelledPurger, retention time.Duration) func() error {
	return func() error {
		if _, err := purger.PurgeCancelled(ctx, retention); err != nil {
			return fmt.Errorf("purge cancelled bookings: %w", err)
		}
		return nil
	}
}

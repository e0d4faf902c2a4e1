package sheets

import (
	"context"
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// full jitter: [0, base*2^(attempt-1))
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	ceiling := base << (attempt - 1)
	if ceiling <= 0 || ceiling > maxBackoff {
		ceiling = maxBackoff
	}
	return time.Duration(rand.Int64N(int64(ceiling)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

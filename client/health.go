package client

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// Polling bounds for WaitUntilHealthy.
const (
	healthInitialInterval = 100 * time.Millisecond
	healthMaxInterval     = 2 * time.Second
)

// WaitUntilHealthy polls /api/health with exponential backoff until the
// service answers or maxWait elapses. A non-positive maxWait checks once.
// Only the health check is repeated; searches are never retried.
func (c *Client) WaitUntilHealthy(ctx context.Context, maxWait time.Duration) (*HealthStatus, error) {
	if maxWait <= 0 {
		return c.Health(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = healthInitialInterval
	exp.Multiplier = 2
	exp.MaxInterval = healthMaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	attempts := 0
	for {
		attempts++
		hs, err := c.Health(ctx)
		if err == nil {
			log.Debug().Int("attempts", attempts).Str("status", hs.Status).Msg("search service healthy")
			return hs, nil
		}

		wait := exp.NextBackOff()
		log.Debug().Err(err).Int("attempts", attempts).Dur("next_in", wait).Msg("search service not ready")

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("service at %s not healthy after %s (%d attempts): %w", c.baseURL, maxWait, attempts, err)
		}
	}
}

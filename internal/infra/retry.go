package infra

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

// connect runs attempt until it succeeds, backing off between tries.
func connect(component string, attempt func() error) error {
	return retry.Do(
		attempt,
		retry.Attempts(5),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.connect.retry").
				Str("component", component).
				Uint("attempt", n+1).
				Err(err).
				Msg("connection attempt failed, retrying")
		}),
	)
}

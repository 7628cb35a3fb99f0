package infra

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
)

// NATS connects to the optional NATS server. It returns a nil connection when no URL is configured.
func NATS(conf *appconfig.Config) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Info().Msg("infra: nats: no url configured, recalculation summaries will not be published")
		return nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	var nc *nats.Conn
	err := connect("nats", func() (err error) {
		nc, err = nats.Connect(conf.NatsURL,
			nats.Name("pityloot"),
			nats.PingInterval(time.Second*20),
			nats.ErrorHandler(errorHandler))
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	return nc, nil
}

package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
)

// Redis connects to the optional Redis server. It returns a nil client when no URL is configured.
func Redis(conf *appconfig.Config) (*redis.Client, error) {
	if conf.RedisURL == "" {
		log.Info().Msg("infra: redis: no url configured, distributed locking disabled")
		return nil, nil
	}

	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	err = connect("redis", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping server")
		return nil, err
	}

	return client, nil
}

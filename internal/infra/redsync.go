package infra

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// RedSync is nil whenever Redis is not configured.
func RedSync(client *goredislib.Client) *redsync.Redsync {
	if client == nil {
		return nil
	}
	pool := goredis.NewPool(client)
	return redsync.New(pool)
}

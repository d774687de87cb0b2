package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/infra/cartstore"
	"hotel-management-system/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 5 * time.Second

var CartStoreModule = fx.Module("cartstore",
	fx.Provide(
		NewCartStore,
	),
)

// NewCartStore picks Redis when an address is configured, otherwise the
// in-process store. Single-instance deployments run fine without Redis.
func NewCartStore(lc fx.Lifecycle, cfg config.Config) (cart.Store, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("no REDIS_ADDR configured, using in-memory cart store")
		return cartstore.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("cart store backed by redis", "addr", cfg.Redis.Addr)
	return cartstore.NewRedisStore(client, cfg.Cart.TTL), nil
}

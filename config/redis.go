package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client, or nil when the server is not
// reachable. A nil client disables caching, rate-limit windows and event
// publishing; the API keeps working without them.
func ConnectRedis(cfg *Config, log *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
		return nil
	}
	log.Info("redis connected", "addr", cfg.RedisAddr)
	return client
}

package config

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"freelance-hub-api/cache"
	"freelance-hub-api/config/common"
)

// NewRedisClient connects to Redis when an address is configured. A nil
// return means single-worker mode: in-process cache, no broker.
func NewRedisClient(cfg *common.Config, log *logrus.Logger) *redis.Client {
	addr, password, db := cfg.GetRedisConfig()
	if addr == "" {
		log.Info("Redis not configured, running in single-worker mode")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	log.Infof("Redis client configured for %s", addr)
	return client
}

func NewCache(client *redis.Client) cache.Cache {
	if client == nil {
		return cache.NewMemoryCache()
	}
	return cache.NewRedisCache(client)
}

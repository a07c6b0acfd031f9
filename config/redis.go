package config

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// InitRedis connects the optional listing cache. Returns nil (cache disabled)
// when REDIS_ADDR is unset or the server is unreachable — the catalog then
// serves straight from the database.
func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
		if addr == "" {
			log.Println("REDIS_ADDR not set; listing cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			log.Printf("warning: redis unreachable (%v); listing cache disabled", err)
			return
		}

		log.Println("Connected to Redis")
		redisClient = client
	})
	return redisClient
}

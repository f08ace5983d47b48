package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phealthcare/healthcare-api/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: config.Get().RedisAddr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// StoreResetToken keeps a password-reset token one-time-usable.
func StoreResetToken(email, token string, ttl time.Duration) error {
	return Client.Set(Ctx, resetKey(email), token, ttl).Err()
}

// TakeResetToken fetches and deletes the stored token in one round trip,
// so a token can never be replayed.
func TakeResetToken(email string) (string, error) {
	return Client.GetDel(Ctx, resetKey(email)).Result()
}

func resetKey(email string) string {
	return "reset-token:" + email
}

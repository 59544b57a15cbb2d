package configs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// เปิด redis สำหรับ idempotency guard — คืน nil ถ้าไม่ได้ตั้ง REDIS_ADDR
func OpenRedis(cfg *Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	r := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// Pool knobs are env-tunable; the defaults suit a single clinic instance.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	MaxRetries   int
}

// InitializeRedis connects the shared client used by the cache layer and
// the registration locks.
func InitializeRedis() error {
	config, err := loadRedisConfig()
	if err != nil {
		return fmt.Errorf("failed to load Redis configuration: %w", err)
	}

	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis server: %w", err)
	}

	RedisClient = client
	log.Printf("Redis connected (pool=%d, minIdle=%d, retries=%d)",
		config.PoolSize, config.MinIdleConns, config.MaxRetries)
	return nil
}

func loadRedisConfig() (RedisConfig, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return RedisConfig{}, errors.New("REDIS_URL environment variable is not set")
	}
	return RedisConfig{
		URL:          url,
		PoolSize:     envInt("REDIS_POOL_SIZE", 10),
		MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 5),
		DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 30*time.Second),
		ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 10*time.Second),
		MaxRetries:   envInt("REDIS_MAX_RETRIES", 3),
	}, nil
}

func envInt(name string, fallback int) int {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring invalid integer for %s, using %d", name, fallback)
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Ignoring invalid duration for %s, using %s", name, fallback)
		return fallback
	}
	return value
}

// NewLock takes a SETNX lock. The repositories use these around duplicate
// checks on registration so two instances cannot admit the same
// identification at once.
func NewLock(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if RedisClient == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return RedisClient.SetNX(ctx, key, value, ttl).Result()
}

// releaseLockScript deletes the key only when the caller still owns it, so
// a lock that expired and was re-taken is never released by the old owner.
const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

func ReleaseLock(ctx context.Context, key string, value string) error {
	if RedisClient == nil {
		return errors.New("Redis client is not initialized")
	}
	result, err := redis.NewScript(releaseLockScript).Run(ctx, RedisClient, []string{key}, value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if count, ok := result.(int64); !ok || count == 0 {
		return errors.New("lock release failed: not the lock owner")
	}
	return nil
}

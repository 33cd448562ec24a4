package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientErr  error
	clientOnce sync.Once
	configURL  string
	configPass string
)

// Configure stores the connection settings used by the lazily created
// client. Must be called before the first Client() call.
func Configure(redisURL, password string) {
	configURL = redisURL
	configPass = password
}

// Client returns the shared Redis client, or nil when Redis is not
// configured or unreachable. Callers are expected to fall back to an
// in-process alternative when nil.
func Client() *redis.Client {
	clientOnce.Do(initClient)
	return client
}

func initClient() {
	if configURL == "" {
		clientErr = errors.New("redis: REDIS_URL not configured")
		return
	}

	parsed, err := url.Parse(configURL)
	if err != nil {
		clientErr = fmt.Errorf("redis: invalid URL: %w", err)
		return
	}

	addr := parsed.Host
	if !strings.Contains(addr, ":") {
		addr += ":6379"
	}

	password := configPass
	if pw, ok := parsed.User.Password(); ok && password == "" {
		password = pw
	}

	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}

	// rediss:// means TLS (managed Redis providers)
	if parsed.Scheme == "rediss" {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		clientErr = fmt.Errorf("redis: connection failed: %w", err)
		_ = c.Close()
		return
	}

	client = c
}

// Err reports why the client is unavailable, if it is.
func Err() error {
	clientOnce.Do(initClient)
	return clientErr
}

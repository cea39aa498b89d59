package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// BloomConfig configures RedisBloom connection and key
type BloomConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Key      string // redis key for bloom filter
	TTL      time.Duration
	// Capacity sets the initial BF.RESERVE capacity (number of items)
	Capacity int
	// ErrorRate sets the desired false positive probability (e.g. 0.001)
	ErrorRate float64
}

// RedisBloom is a minimal Redis-backed Bloom wrapper using RedisBloom
// commands. It gives scans a cross-run memory of already-served articles
// without turning the server stateful: a down Redis only means duplicates
// may reappear.
type RedisBloom struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisBloomFromEnv creates a RedisBloom client when REDIS_ADDR is set
// and returns (nil, nil) otherwise, so deduplication stays optional.
// Recognized variables: REDIS_ADDR, REDIS_PASS, BLOOM_KEY, BLOOM_TTL_SECONDS,
// BLOOM_CAPACITY, BLOOM_ERROR_RATE.
func NewRedisBloomFromEnv() (*RedisBloom, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	key := os.Getenv("BLOOM_KEY")
	if key == "" {
		key = "balitai:articles:bloom"
	}
	ttl := 24 * time.Hour
	if t := os.Getenv("BLOOM_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	capacity := 100000
	if c := os.Getenv("BLOOM_CAPACITY"); c != "" {
		if v, err := strconv.Atoi(c); err == nil && v > 0 {
			capacity = v
		}
	}
	errorRate := 0.001
	if e := os.Getenv("BLOOM_ERROR_RATE"); e != "" {
		if v, err := strconv.ParseFloat(e, 64); err == nil && v > 0 {
			errorRate = v
		}
	}

	cfg := BloomConfig{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASS"),
		Key:       key,
		TTL:       ttl,
		Capacity:  capacity,
		ErrorRate: errorRate,
	}
	return NewRedisBloom(cfg)
}

// NewRedisBloom creates a RedisBloom wrapper and verifies connectivity.
func NewRedisBloom(cfg BloomConfig) (*RedisBloom, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	rb := &RedisBloom{client: client, key: cfg.Key, ttl: cfg.TTL}

	// Reserve the filter up front when the key is new. BF.ADD auto-creates
	// one on most RedisBloom setups, so a failed reserve is non-fatal.
	exists, err := client.Exists(ctx, cfg.Key).Result()
	if err == nil && exists == 0 {
		args := []interface{}{"BF.RESERVE", cfg.Key, fmt.Sprintf("%f", cfg.ErrorRate), cfg.Capacity}
		_ = client.Do(ctx, args...).Err()
	}

	return rb, nil
}

// Close closes the underlying Redis client
func (r *RedisBloom) Close() error {
	return r.client.Close()
}

// Exists checks if the hashed value is present in the bloom filter.
// Uses the RedisBloom BF.EXISTS command.
func (r *RedisBloom) Exists(hash string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.client.Do(ctx, "BF.EXISTS", r.key, hash).Result()
	if err != nil {
		return false, err
	}

	switch v := res.(type) {
	case int64:
		return v == 1, nil
	case string:
		return v == "1", nil
	default:
		return false, fmt.Errorf("unexpected BF.EXISTS response type %T: %v", res, res)
	}
}

// Add inserts the hashed value into the bloom filter and refreshes the TTL,
// so the filter stays alive for ttl after the most recent insertion.
func (r *RedisBloom) Add(hash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Do(ctx, "BF.ADD", r.key, hash).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, r.key, r.ttl).Err()
}

// NormalizeAndHash normalizes an article URL and title and returns a SHA-256
// hex hash of the pair. URLs lose fragments, tracking parameters and trailing
// slashes; titles are lowercased with whitespace collapsed.
func NormalizeAndHash(articleURL, title string) string {
	combined := NormalizeURL(articleURL) + "|" + normalizeTitle(title)
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:])
}

func normalizeTitle(t string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(t))), " ")
}

// NormalizeURL canonicalizes an article URL for duplicate detection within
// and across scans.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return strings.TrimRight(u.String(), "/")
}

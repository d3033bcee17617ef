package cache

import (
	"time"

	redis "github.com/redis/go-redis/v9"
)

// token bucket, refilled in fixed intervals. State lives in a redis hash per
// key so independent callers share one budget.
var tokenBucketScript = redis.NewScript(`
	-- KEYS[1] = bucket key
	-- ARGV[1] = now (ms)
	-- ARGV[2] = capacity
	-- ARGV[3] = tokens added per interval
	-- ARGV[4] = interval (ms)
	-- ARGV[5] = key ttl (s)

	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		local until_next = interval_ms - (now_ms - last_refill)
		if until_next < 0 then until_next = 0 end
		retry_after_ms = until_next
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

type RateLimiter struct {
	cache          *RedisCache
	capacity       int
	refillTokens   int
	refillInterval time.Duration
	ttl            time.Duration
}

func NewRateLimiter(cache *RedisCache, capacity, refillTokens int, refillInterval, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		cache:          cache,
		capacity:       capacity,
		refillTokens:   refillTokens,
		refillInterval: refillInterval,
		ttl:            ttl,
	}
}

// Allow takes one token from the bucket behind key. When the bucket is empty
// it reports how long the caller should wait before retrying.
func (l *RateLimiter) Allow(key string) (allowed bool, remaining int64, retryAfter time.Duration, err error) {
	args := []any{
		time.Now().UnixMilli(),
		l.capacity,
		l.refillTokens,
		l.refillInterval.Milliseconds(),
		int64(l.ttl / time.Second),
	}
	res, err := tokenBucketScript.Run(ctx, l.cache.Client, []string{key}, args...).Int64Slice()
	if err != nil {
		return false, 0, 0, err
	}
	if len(res) != 3 {
		return true, 0, 0, nil
	}
	return res[0] == 1, res[1], time.Duration(res[2]) * time.Millisecond, nil
}

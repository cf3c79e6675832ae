package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"crisisAlert/internal/domain"
)

const (
	activeEventsKey    = "crisis:active"
	activeEventsGenKey = "crisis:active:gen"
)

// setIfGeneration writes KEYS[2] only while KEYS[1] still holds ARGV[1].
var setIfGeneration = redis.NewScript(`
local gen = tonumber(redis.call('GET', KEYS[1]) or '0')
if gen ~= tonumber(ARGV[1]) then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// EventCache keeps the full list of active crisis events as one JSON value.
// Every invalidation bumps a generation counter, and a list read from the
// store is written back only if no invalidation happened since the miss.
type EventCache struct {
	client *redis.Client
	key    string
	genKey string
}

func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{
		client: client,
		key:    activeEventsKey,
		genKey: activeEventsGenKey,
	}
}

// GetActive returns nil on a miss. A hit always yields a non-nil slice. The
// generation is returned in both cases.
func (c *EventCache) GetActive(ctx context.Context) ([]*domain.CrisisEvent, int64, error) {
	vals, err := c.client.MGet(ctx, c.genKey, c.key).Result()
	if err != nil {
		return nil, 0, err
	}

	gen, err := parseGeneration(vals[0])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[1].(string)
	if !ok {
		return nil, gen, nil
	}

	events := make([]*domain.CrisisEvent, 0)
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, gen, err
	}
	if events == nil {
		events = []*domain.CrisisEvent{}
	}
	return events, gen, nil
}

// SetActive stores events unless the cache was invalidated after gen was
// read. A skipped write is not an error.
func (c *EventCache) SetActive(ctx context.Context, events []*domain.CrisisEvent, gen int64, ttl time.Duration) error {
	if events == nil {
		events = []*domain.CrisisEvent{}
	}
	b, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return setIfGeneration.Run(ctx, c.client,
		[]string{c.genKey, c.key},
		gen, string(b), ttl.Milliseconds(),
	).Err()
}

func (c *EventCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	return err
}

func parseGeneration(v interface{}) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected generation type %T", v)
	}
	return strconv.ParseInt(s, 10, 64)
}

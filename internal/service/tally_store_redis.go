package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"dowry-calculator/internal/domain"
)

const redisTallyRecordScript = `
local total = redis.call("INCR", KEYS[1])
if ARGV[1] == "1" then
  redis.call("INCR", KEYS[2])
end
return total
`

type redisTallyStore struct {
	client  redisTallyClient
	prefix  string
	timeout time.Duration
}

type redisTallyClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func NewRedisTallyStore(client *redis.Client) TallyStore {
	if client == nil {
		return nil
	}
	return &redisTallyStore{
		client:  client,
		prefix:  "dowry:tally:",
		timeout: 500 * time.Millisecond,
	}
}

func (s *redisTallyStore) keys() []string {
	return []string{s.prefix + "total", s.prefix + "priceless"}
}

func (s *redisTallyStore) Record(ctx context.Context, priceless bool) error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	flag := "0"
	if priceless {
		flag = "1"
	}
	if err := s.client.Eval(ctx, redisTallyRecordScript, s.keys(), flag).Err(); err != nil {
		return fmt.Errorf("record tally: %w", err)
	}
	return nil
}

func (s *redisTallyStore) Snapshot(ctx context.Context) (domain.Tally, error) {
	if s == nil || s.client == nil {
		return domain.Tally{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	vals, err := s.client.MGet(ctx, s.keys()...).Result()
	if err != nil {
		return domain.Tally{}, fmt.Errorf("read tally: %w", err)
	}
	if len(vals) != 2 {
		return domain.Tally{}, errors.New("read tally: unexpected reply")
	}
	total, err := parseCounter(vals[0])
	if err != nil {
		return domain.Tally{}, err
	}
	priceless, err := parseCounter(vals[1])
	if err != nil {
		return domain.Tally{}, err
	}
	return domain.Tally{TotalValuations: total, PricelessValuations: priceless}, nil
}

// parseCounter trata una clave inexistente (nil) como cero.
func parseCounter(v interface{}) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse tally counter %q: %w", val, err)
		}
		return n, nil
	case int64:
		return val, nil
	default:
		return 0, fmt.Errorf("parse tally counter: unexpected type %T", v)
	}
}

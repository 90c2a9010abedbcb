package v1

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSink streams formatted log lines to a redis list, so a collector on
// another host can tail the output of a run while it executes.
type RedisSink struct {
	client *redis.Client
	key    string
}

// OpenRedisSink connects to Redis using go-redis/v9 and returns a sink that
// pushes to the given list key.
func OpenRedisSink(addr, password string, db int, key string) (*RedisSink, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(context.Background()).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("connect redis sink: %w", err)
	}
	return &RedisSink{client: c, key: key}, nil
}

// Attach subscribes the sink to a runner. Once attached, push failures are
// swallowed: the sink is best effort and never fails the run.
func (s *RedisSink) Attach(r *Runner) {
	r.RegisterLogHandler(s.push)
}

func (s *RedisSink) push(e LogEntry) {
	line := fmt.Sprintf("[%s] %s", e.Type, e.Summary)
	if e.Detail != "" {
		line += " - " + e.Detail
	}
	s.client.RPush(context.Background(), s.key, line)
}

// Close releases the redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}

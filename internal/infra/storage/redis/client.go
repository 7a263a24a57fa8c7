// Package redis stores monitored targets and scan checkpoints in Redis.
//
// Every key lives under a namespace ("oraclewatch" by default) so several
// deployments can share one database:
//
//	{namespace}:target:storage:{kind}  set of descriptors
//	{namespace}:target:lastscan        hash of target ID to RFC 3339 time
package redis

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

const defaultNamespace = "oraclewatch"

type client struct {
	conn      *redis.Client
	namespace string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// key joins parts under the client namespace.
func (c *client) key(format string, args ...any) string {
	return c.namespace + ":" + fmt.Sprintf(format, args...)
}

type config struct {
	username  string
	password  string
	db        int
	namespace string
}

type Option func(*config)

// WithCredentials sets the ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithNamespace replaces the key namespace.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// NewClient connects to addr and pings it before returning.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	return &client{
		conn:      conn,
		namespace: cfg.namespace,
	}, nil
}

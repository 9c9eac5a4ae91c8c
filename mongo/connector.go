package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connector establishes the MongoDB connection lazily and caches it.
// A failed attempt is not cached, the next call retries, so a database
// that was down at boot does not wedge the process permanently.
type Connector struct {
	uri string

	mu     sync.Mutex
	client *mongo.Client
}

func NewConnector(uri string) *Connector {
	return &Connector{
		uri: uri,
	}
}

// Ensure returns the connected client, dialing on first use. Concurrent
// first calls are serialized so only one dial happens.
func (c *Connector) Ensure(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	c.client = client
	return c.client, nil
}

func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}

package bootstrap

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"

	"github.com/GregMSThompson/userdata-api/internal/errs"
)

// MongoConnector hands out the configured database, dialing on first use and
// reusing the open client afterwards. Concurrent first calls share one dial;
// mu only guards the cached client, never the network round trip.
type MongoConnector struct {
	uri    string
	dbName string

	dials singleflight.Group

	mu     sync.Mutex
	client *mongo.Client
	closed bool
}

func NewMongoConnector(uri, dbName string) *MongoConnector {
	return &MongoConnector{uri: uri, dbName: dbName}
}

// Database returns the named database. Unusable settings and unreachable
// servers come back as *errs.ConnectionError. A caller whose ctx ends while a
// dial is in flight returns at once; the dial carries on for the others.
func (c *MongoConnector) Database(ctx context.Context) (*mongo.Database, error) {
	if client := c.cached(); client != nil {
		return client.Database(c.dbName), nil
	}

	ch := c.dials.DoChan("connect", func() (any, error) {
		if client := c.cached(); client != nil {
			return client, nil
		}
		client, err := c.connect(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		return c.install(client)
	})

	select {
	case <-ctx.Done():
		return nil, errs.NewConnectionError("gave up waiting for the document store", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*mongo.Client).Database(c.dbName), nil
	}
}

func (c *MongoConnector) cached() *mongo.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}

func (c *MongoConnector) install(client *mongo.Client) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		_ = client.Disconnect(context.Background())
		return nil, errs.NewConnectionError("document store connector is closed", nil)
	}
	if c.client != nil {
		_ = client.Disconnect(context.Background())
		return c.client, nil
	}
	c.client = client
	return client, nil
}

func (c *MongoConnector) connect(ctx context.Context) (*mongo.Client, error) {
	if c.uri == "" {
		return nil, errs.NewConnectionError("document store connection string is not set", nil)
	}
	if c.dbName == "" {
		return nil, errs.NewConnectionError("document store database name is not set", nil)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, errs.NewConnectionError("failed to connect to document store", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errs.NewConnectionError("document store is unreachable", err)
	}
	return client, nil
}

// Close disconnects the cached client, if any. Dials finishing afterwards are
// discarded.
func (c *MongoConnector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}

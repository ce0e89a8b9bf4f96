package store

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// Client wraps the Neo4j driver for one upload target.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logrus.Entry
}

// URI builds a driver URI from host and port.
func URI(host string, port int) string {
	return fmt.Sprintf("neo4j://%s:%d", host, port)
}

// NewClient connects to Neo4j and verifies connectivity before returning,
// so a bad address or bad credentials fail fast instead of mid-transaction.
func NewClient(ctx context.Context, uri, user, password, database string, logger *logrus.Logger) (*Client, error) {
	if uri == "" || user == "" {
		return nil, errors.ConfigErrorf("neo4j credentials missing: uri=%q, user=%q", uri, user)
	}
	if database == "" {
		database = "neo4j"
	}

	driver, err := neo4j.NewDriverWithContext(uri,
		neo4j.BasicAuth(user, password, ""),
		func(config *neo4j.Config) {
			config.SocketConnectTimeout = 5 * time.Second
			config.SocketKeepalive = true
		})
	if err != nil {
		return nil, errors.StoreErrorf(err, "failed to create neo4j driver for %s", uri)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, errors.StoreErrorf(err, "failed to connect to neo4j at %s", uri)
	}

	log := logger.WithField("component", "neo4j")
	log.WithFields(logrus.Fields{
		"uri":      uri,
		"user":     user,
		"database": database,
	}).Debug("neo4j client connected")

	return &Client{
		driver:   driver,
		database: database,
		log:      log,
	}, nil
}

// Database returns the configured database name.
func (c *Client) Database() string {
	return c.database
}

// Close closes the underlying driver connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.driver.Close(ctx); err != nil {
		return errors.StoreError(err, "failed to close neo4j driver")
	}
	c.log.Debug("neo4j client closed")
	return nil
}

package store

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// Tx is one explicit write transaction against the configured database.
// Exactly one is open for the full duration of an upload run.
type Tx struct {
	session neo4j.SessionWithContext
	tx      neo4j.ExplicitTransaction
	log     *logrus.Entry
}

// Begin opens a session and starts an explicit transaction on it. The
// returned Tx must be finished with Commit or Rollback and then released
// with Close regardless of outcome.
func (c *Client) Begin(ctx context.Context) (*Tx, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeWrite,
	})

	tx, err := session.BeginTransaction(ctx)
	if err != nil {
		session.Close(ctx)
		return nil, errors.StoreError(err, "failed to begin transaction")
	}

	return &Tx{session: session, tx: tx, log: c.log}, nil
}

// Execute runs one statement with named parameters inside the transaction.
// The driver error is preserved unchanged as the cause.
func (t *Tx) Execute(ctx context.Context, statement string, params map[string]any) error {
	if _, err := t.tx.Run(ctx, statement, params); err != nil {
		return errors.StoreError(err, "statement failed").
			WithContext("statement", statement)
	}
	return nil
}

// Commit commits the whole transaction atomically.
func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return errors.StoreError(err, "commit failed")
	}
	return nil
}

// Rollback undoes every statement issued in this transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		// Reported but rarely actionable: the server discards an
		// unfinished transaction when the session goes away.
		t.log.WithError(err).Warn("rollback failed")
		return errors.StoreError(err, "rollback failed")
	}
	return nil
}

// Close releases the transaction and its session. Safe to defer alongside
// Commit/Rollback: an already-finished transaction closes cleanly, an
// unfinished one is rolled back by the driver.
func (t *Tx) Close(ctx context.Context) {
	t.tx.Close(ctx)
	t.session.Close(ctx)
}

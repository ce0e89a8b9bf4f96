// Package uploader materializes a graph description inside the store:
// optional clear, then every node, then every edge, all in one transaction.
package uploader

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/graphdesc/graphdesc/internal/errors"
	"github.com/graphdesc/graphdesc/internal/graph"
)

// Tx is the narrow store contract the orchestrator drives. Statements use
// named placeholders corresponding to the parameter map keys.
type Tx interface {
	Execute(ctx context.Context, statement string, params map[string]any) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Options controls one upload run.
type Options struct {
	// ClearFirst deletes all relationships and then all nodes before any
	// creation, inside the same transaction as the rest of the run.
	ClearFirst bool
	// Progress receives per-phase completion updates. Nil means none.
	Progress Progress
}

// Uploader runs graph descriptions into a store.
type Uploader struct {
	log *logrus.Logger
}

// New creates an uploader logging to the given logger.
func New(logger *logrus.Logger) *Uploader {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Uploader{log: logger}
}

// Upload issues every statement for the description inside the given
// transaction, committing once on success. Any failure rolls the whole
// transaction back, so no partial graph is ever committed; the triggering
// error is returned unchanged.
//
// Re-running without ClearFirst on a non-empty store is additive: nodes are
// created, not merged, so duplicates will appear.
func (u *Uploader) Upload(ctx context.Context, desc *graph.Description, tx Tx, opts Options) error {
	progress := opts.Progress
	if progress == nil {
		progress = NopProgress()
	}

	log := u.log.WithFields(logrus.Fields{
		"component": "uploader",
		"run_id":    uuid.NewString(),
	})

	if err := u.run(ctx, desc, tx, opts.ClearFirst, progress, log); err != nil {
		log.WithError(err).Error("upload failed, rolling back")
		tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.WithError(err).Error("commit failed")
		return err
	}

	log.WithFields(logrus.Fields{
		"nodes": len(desc.Nodes),
		"edges": len(desc.Edges),
	}).Info("upload committed")
	return nil
}

func (u *Uploader) run(ctx context.Context, desc *graph.Description, tx Tx, clearFirst bool, progress Progress, log *logrus.Entry) error {
	if clearFirst {
		for _, stmt := range graph.ClearStatements() {
			if err := u.execute(ctx, tx, stmt, log); err != nil {
				return err
			}
		}
	}

	// Nodes first, so every edge's endpoints are matchable by the time its
	// statement runs within the same transaction.
	nodeIDs := desc.NodeIDs()
	for i, id := range nodeIDs {
		stmt, err := graph.CreateNode(desc.Nodes[id])
		if err != nil {
			return err
		}
		if err := u.execute(ctx, tx, stmt, log); err != nil {
			return err
		}
		progress.OnProgress("Nodes", i+1, len(nodeIDs))
	}

	edgeIDs := desc.EdgeIDs()
	for i, id := range edgeIDs {
		stmt, err := u.buildEdge(desc, id)
		if err != nil {
			return err
		}
		if err := u.execute(ctx, tx, stmt, log); err != nil {
			return err
		}
		progress.OnProgress("Edges", i+1, len(edgeIDs))
	}

	return nil
}

// buildEdge parses the edge identifier, resolves both endpoints against the
// node set and builds the creation statement.
func (u *Uploader) buildEdge(desc *graph.Description, edgeID string) (graph.Statement, error) {
	left, dir, right, err := graph.ParseEdgeID(edgeID)
	if err != nil {
		return graph.Statement{}, err
	}

	for _, nodeID := range []string{left, right} {
		if _, ok := desc.Nodes[nodeID]; !ok {
			return graph.Statement{}, errors.
				UnknownNodeErrorf("edge %q uses node %q which cannot be found in the nodes", edgeID, nodeID).
				WithContext("edge_id", edgeID).
				WithContext("node_id", nodeID)
		}
	}

	return graph.CreateEdge(desc.Nodes[left], desc.Nodes[right], desc.Edges[edgeID], dir)
}

func (u *Uploader) execute(ctx context.Context, tx Tx, stmt graph.Statement, log *logrus.Entry) error {
	log.WithFields(logrus.Fields{
		"query":  stmt.Query,
		"params": stmt.Params,
	}).Debug("executing statement")
	return tx.Execute(ctx, stmt.Query, stmt.Params)
}

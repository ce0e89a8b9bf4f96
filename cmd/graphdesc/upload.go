package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/graphdesc/graphdesc/internal/config"
	"github.com/graphdesc/graphdesc/internal/graph"
	"github.com/graphdesc/graphdesc/internal/output"
	"github.com/graphdesc/graphdesc/internal/store"
	"github.com/graphdesc/graphdesc/internal/uploader"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a graph description file into Neo4j",
	Long: `Upload a graph description into Neo4j.

The description is a JSON or YAML document with two top-level mappings:

  nodes: node id -> { label, properties }
  edges: edge id -> { label, properties }

Each edge id encodes its endpoints and direction, e.g. "alice->bob" or
"alice<-bob". Nodes are created first, then every edge is resolved against
the node set and created. Everything runs in one transaction: any failure
rolls the whole run back, including the optional pre-upload clear.

Examples:
  graphdesc upload --host localhost -u neo4j -f graph.json
  graphdesc upload --host db.internal -p 7687 -u neo4j -d movies -f graph.yaml
  graphdesc upload --host localhost -u neo4j -f graph.json --no-prior-clear`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("host", "", "Neo4j host (or NEO4J_HOST)")
	uploadCmd.Flags().IntP("port", "p", 7687, "Neo4j bolt port")
	uploadCmd.Flags().StringP("user", "u", "", "Neo4j user (or NEO4J_USER)")
	uploadCmd.Flags().String("password", "", "Neo4j password (or NEO4J_PASSWORD; prompted when omitted)")
	uploadCmd.Flags().StringP("database", "d", "", "Neo4j database name")
	uploadCmd.Flags().StringP("file", "f", "", "graph description file (.json, .yaml)")
	uploadCmd.Flags().Bool("no-prior-clear", false, "skip deleting the existing graph before uploading")
	uploadCmd.Flags().BoolP("quiet", "q", false, "disable progress output")
	uploadCmd.MarkFlagRequired("file")
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		host = cfg.Neo4j.Host
	}
	if host == "" {
		return fmt.Errorf("no Neo4j host: pass --host or set NEO4J_HOST")
	}

	port, _ := cmd.Flags().GetInt("port")
	if !cmd.Flags().Changed("port") && cfg.Neo4j.Port != 0 {
		port = cfg.Neo4j.Port
	}

	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = cfg.Neo4j.User
	}
	if user == "" {
		return fmt.Errorf("no Neo4j user: pass --user or set NEO4J_USER")
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = cfg.Neo4j.Password
	}
	if password == "" {
		var err error
		password, err = config.PromptPassword(fmt.Sprintf("Password for %s@%s: ", user, host))
		if err != nil {
			return err
		}
	}

	database, _ := cmd.Flags().GetString("database")
	if database == "" {
		database = cfg.Neo4j.Database
	}

	noPriorClear, _ := cmd.Flags().GetBool("no-prior-clear")
	clearFirst := cfg.Upload.Clear
	if noPriorClear {
		clearFirst = false
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if cfg.Upload.Quiet {
		quiet = true
	}

	file, _ := cmd.Flags().GetString("file")
	desc, err := graph.DecodeFile(file)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":  file,
		"nodes": len(desc.Nodes),
		"edges": len(desc.Edges),
	}).Debug("graph description loaded")

	client, err := store.NewClient(ctx, store.URI(host, port), user, password, database, logger)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	tx, err := client.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Close(ctx)

	opts := uploader.Options{ClearFirst: clearFirst}
	if !quiet {
		opts.Progress = output.NewConsole()
	}

	if err := uploader.New(logger).Upload(ctx, desc, tx, opts); err != nil {
		return err
	}

	fmt.Printf("✓ Uploaded %d nodes and %d edges to %s\n", len(desc.Nodes), len(desc.Edges), client.Database())
	return nil
}

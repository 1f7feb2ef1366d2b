package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/solrkit"
	"github.com/kailas-cloud/solrkit/internal/config"
	logpkg "github.com/kailas-cloud/solrkit/internal/logger"
	"github.com/kailas-cloud/solrkit/internal/metrics"
	"github.com/kailas-cloud/solrkit/internal/version"
)

const usage = `usage: solrkit <command> [args]

commands:
  add '<json object>'   index one document and commit
  query '<expression>'  run a select query (e.g. '*:*' or 'city:London')
  delete '<expression>' delete documents matching the expression
  delete-id <id>        delete one document by unique key
  commit                make prior writes visible
  rollback              withdraw uncommitted writes
  optimize              merge index segments
`

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("solrkit CLI",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("solr_url", cfg.Solr.URL),
	)

	// Register transport metrics explicitly (no init())
	metrics.RegisterTransportMetrics()

	opts := []solrkit.Option{
		solrkit.WithTimeout(time.Duration(cfg.Solr.TimeoutSec) * time.Second),
	}
	if len(cfg.Cache.Addrs) > 0 {
		opts = append(opts, solrkit.WithQueryCache(
			cfg.Cache.Addrs[0],
			cfg.Cache.Password,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
		))
	}

	client, err := solrkit.New(cfg.Solr.URL, opts...)
	if err != nil {
		logger.Fatal("Failed to create client", zap.Error(err))
	}
	defer client.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)

	if err := run(ctx, client, os.Args[1:]); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}

func run(ctx context.Context, client *solrkit.Client, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch cmd := args[0]; cmd {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("add requires a JSON document argument")
		}
		doc, err := parseDocument(args[1])
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		res, err := client.AddAndCommit(ctx, doc)
		if err != nil {
			return err
		}
		fmt.Printf("added and committed (QTime %dms)\n", res.Time)

	case "query":
		if len(args) < 2 {
			return fmt.Errorf("query requires an expression argument")
		}
		res, err := client.Query(ctx, solrkit.NewQuery(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%d matched, page of %d from offset %d\n",
			res.Total, len(res.Documents), res.Start)
		for _, d := range res.Documents {
			printDocument(d)
		}

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete requires an expression argument")
		}
		if _, err := client.DeleteByQuery(ctx, args[1]); err != nil {
			return err
		}
		_, err := client.Commit(ctx)
		return err

	case "delete-id":
		if len(args) < 2 {
			return fmt.Errorf("delete-id requires an id argument")
		}
		if _, err := client.DeleteByID(ctx, args[1]); err != nil {
			return err
		}
		_, err := client.Commit(ctx)
		return err

	case "commit":
		_, err := client.Commit(ctx)
		return err

	case "rollback":
		_, err := client.Rollback(ctx)
		return err

	case "optimize":
		_, err := client.Optimize(ctx)
		return err

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// parseDocument turns a JSON object argument into a Document. Keys are
// sorted for deterministic field order; exact ordering control is only
// available through the library API.
func parseDocument(arg string) (solrkit.Document, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(arg)))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return solrkit.Document{}, err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var doc solrkit.Document
	for _, k := range keys {
		doc.AddField(k, fieldValue(m[k]))
	}
	return doc, nil
}

func fieldValue(v any) solrkit.Value {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return solrkit.Int64(i)
		}
		if f, err := t.Float64(); err == nil {
			return solrkit.Float64(f)
		}
		return solrkit.Null()
	case string:
		return solrkit.String(t)
	case bool:
		return solrkit.Bool(t)
	default:
		return solrkit.Null()
	}
}

func printDocument(d solrkit.Document) {
	fmt.Print("  {")
	for i, f := range d.Fields() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s=%v", f.Name, f.Value.Interface())
	}
	fmt.Println("}")
}

package main

import (
	"context"
	"fmt"

	"github.com/relctl/relctl/service/config"
	"github.com/relctl/relctl/service/output"
	"github.com/relctl/relctl/service/storage"
	"github.com/spf13/pflag"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 90, "Purge releases older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: relctl db <vacuum|purge> [--db-path ...]")
	}

	store, err := openHistory(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d releases\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of rows to list")
	format := fs.StringP("output", "o", "table", "Output format (table or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: relctl history <list>")
	}

	store, err := openHistory(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		releases, err := store.GetRecentReleases(*limit)
		if err != nil {
			return err
		}
		return output.NewService(*format).RenderReleases(releases)
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}

// openHistory opens the history db at the explicit path, falling back to the
// configured location.
func openHistory(dbPath string) (storage.Service, error) {
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.History.Path
	}
	return storage.NewService(dbPath)
}

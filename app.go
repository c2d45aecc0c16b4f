// Package main is the entry point for the relctl application.
package main

import (
	"fmt"
	"os"

	"github.com/relctl/relctl/model"
	"github.com/relctl/relctl/service/config"
	"github.com/relctl/relctl/service/flag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		case "version":
			fmt.Printf("relctl %s (commit %s, built %s)\n", version, commit, date)
			return nil
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags(os.Args[1:])
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	return runRelease(flags, cfg, versionInfo)
}

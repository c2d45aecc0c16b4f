package main

import (
	"path/filepath"
	"testing"
)

func TestRunStorageCommandUnsupported(t *testing.T) {
	if err := runStorageCommand("dashboard", nil); err == nil {
		t.Fatal("expected error for unsupported command")
	}
}

func TestRunDBCommandUsage(t *testing.T) {
	if err := runDBCommand([]string{"--db-path", filepath.Join(t.TempDir(), "h.db")}); err == nil {
		t.Fatal("expected usage error without a subcommand")
	}
}

func TestRunDBCommandVacuum(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "h.db")
	if err := runDBCommand([]string{"vacuum", "--db-path", dbPath}); err != nil {
		t.Fatalf("vacuum failed: %v", err)
	}
}

func TestRunHistoryCommandList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "h.db")
	if err := runHistoryCommand([]string{"list", "--db-path", dbPath, "--output", "json"}); err != nil {
		t.Fatalf("history list failed: %v", err)
	}
}

func TestRunHistoryCommandUnsupported(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "h.db")
	if err := runHistoryCommand([]string{"show", "--db-path", dbPath}); err == nil {
		t.Fatal("expected error for unsupported history command")
	}
}

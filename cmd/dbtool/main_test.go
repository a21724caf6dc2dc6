package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestRun_Migrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "caixa.db")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("APP_ENV", "dev")

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"dbtool", "migrate"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "migrations applied") {
		t.Fatalf("stdout=%q", stdout.String())
	}

	// second run is a no-op
	stdout.Reset()
	if code := run(context.Background(), []string{"dbtool", "migrate"}, &stdout, &stderr); code != 0 {
		t.Fatalf("rerun exit=%d stderr=%q", code, stderr.String())
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("schema_migrations: %v", err)
	}
	if n != 2 {
		t.Fatalf("applied migrations=%d want=2", n)
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"dbtool"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit=%d want=1", code)
	}
	if !strings.Contains(stderr.String(), "usage:") {
		t.Fatalf("stderr=%q", stderr.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "caixa.db"))

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"dbtool", "seed"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit=%d want=1", code)
	}
	if !strings.Contains(stderr.String(), "unknown command: seed") {
		t.Fatalf("stderr=%q", stderr.String())
	}
}

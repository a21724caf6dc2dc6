package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/numdez/daguaCollection/internal/config"
	"github.com/numdez/daguaCollection/internal/db"
	"github.com/numdez/daguaCollection/internal/logging"
	"github.com/numdez/daguaCollection/internal/migrate"
)

const usage = "usage: %s <command>\n  migrate  apply pending schema migrations\n"

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintf(stderr, usage, args[0])
		return 1
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	slog.SetDefault(logging.New(cfg, version, "dbtool"))

	switch args[1] {
	case "migrate":
		conn, err := db.Open(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "db open: %v\n", err)
			return 1
		}
		defer func() {
			if closeErr := db.Close(conn); closeErr != nil {
				slog.Error("db close", "err", closeErr)
			}
		}()

		if err := migrate.Run(ctx, conn); err != nil {
			fmt.Fprintf(stderr, "migrate: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "migrations applied")
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[1])
		return 1
	}
}

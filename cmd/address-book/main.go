// main is the entry point of the address-book driver.
//
// STARTUP SEQUENCE:
//  1. Parse the command line
//  2. Load configuration (YAML file and/or environment)
//  3. Initialise the logger
//  4. Create an empty in-memory address book
//  5. Run the selected command against it
//
// RUNNING:
//
//	go run ./cmd/address-book                   # runs the demo scenario
//	go run ./cmd/address-book list --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/address-book list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aanand-mishra/address-book/internal/config"
	"github.com/aanand-mishra/address-book/internal/storage"
	"github.com/aanand-mishra/address-book/internal/storage/memory"
)

var version = "dev"

// CLI is the top-level command structure.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Path to the configuration YAML file." env:"CONFIG_PATH"`

	Demo DemoCmd `cmd:"" default:"1" help:"Run the example scenario on an empty address book."`
	List ListCmd `cmd:"" help:"Add the contacts from the config file and print them."`
}

// app carries what every command needs. It is bound into kong so each
// command's Run method receives it as an argument.
type app struct {
	cfg   *config.Config
	store storage.Storage
	log   *slog.Logger
	out   io.Writer
}

// printAll writes every record on its own line, in insertion order.
func (a *app) printAll() {
	for _, rec := range a.store.All() {
		fmt.Fprintln(a.out, rec)
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("address-book"),
		kong.Description("In-memory contact book."),
		kong.Vars{"version": version},
	)

	// ── Load Config ───────────────────────────────────────────────────────
	// MustLoad exits the process if the file is missing or invalid.
	cfg := config.MustLoad(cli.Config)

	// ── Initialise Logger ─────────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Info("starting address-book",
		slog.String("env", cfg.Env),
		slog.String("version", version),
		slog.String("command", ctx.Command()),
	)

	// ── Run Command ───────────────────────────────────────────────────────
	// The book is stored as the storage.Storage interface; commands never
	// see the concrete type.
	err := ctx.Run(&app{
		cfg:   cfg,
		store: memory.New(),
		log:   log,
		out:   os.Stdout,
	})
	if err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
// Logs go to stderr so they never mix with the records printed on stdout.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}

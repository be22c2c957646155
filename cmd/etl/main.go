package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"asset-management-service/internal/adapters/secondary/postgres"
	"asset-management-service/internal/config"
	"asset-management-service/internal/core/services"
	"asset-management-service/internal/etl"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(&tapeCmd{}, "")
	commander.Register(&servicerCmd{}, "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

// ============================================================================
// tape
// ============================================================================

// tapeCmd imports a seller loan tape under an existing trade.
type tapeCmd struct {
	trade string
	file  string
}

func (*tapeCmd) Name() string     { return "tape" }
func (*tapeCmd) Synopsis() string { return "Import a seller loan tape under a trade." }
func (*tapeCmd) Usage() string {
	return `tape -trade <trade-id> -file <tape.csv|tape.xlsx>:
  Import a seller loan tape. One asset hub per servicer loan number;
  rows matching an existing hub in the trade update it.
`
}

func (c *tapeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trade, "trade", "", "trade id the tape belongs to")
	f.StringVar(&c.file, "file", "", "tape file, CSV or Excel")
}

func (c *tapeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	tradeID, err := uuid.Parse(c.trade)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -trade id:", err)
		return subcommands.ExitUsageError
	}
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		return subcommands.ExitUsageError
	}

	rows, err := etl.ReadFile(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read tape:", err)
		return subcommands.ExitFailure
	}

	pool, err := connect(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer pool.Close()

	assetSvc := services.NewAssetService(postgres.NewAssetRepository(pool), postgres.NewTradeRepository(pool))

	result, err := assetSvc.ImportTape(ctx, tradeID, rows)
	if err != nil {
		fmt.Fprintln(os.Stderr, "import tape:", err)
		return subcommands.ExitFailure
	}

	log.WithFields(log.Fields{
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Stats.Skipped,
	}).Info("tape import complete")
	for _, msg := range result.Stats.Errors {
		fmt.Fprintln(os.Stderr, msg)
	}
	return subcommands.ExitSuccess
}

// ============================================================================
// servicer
// ============================================================================

// servicerCmd imports a servicer snapshot feed across the whole portfolio.
type servicerCmd struct {
	file string
}

func (*servicerCmd) Name() string     { return "servicer" }
func (*servicerCmd) Synopsis() string { return "Import a servicer snapshot feed." }
func (*servicerCmd) Usage() string {
	return `servicer -file <feed.csv|feed.xlsx>:
  Import a servicer feed. Rows are matched to assets by servicer loan
  number; unmatched rows are reported, not fatal.
`
}

func (c *servicerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "feed file, CSV or Excel")
}

func (c *servicerCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		return subcommands.ExitUsageError
	}

	rows, err := etl.ReadFile(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read feed:", err)
		return subcommands.ExitFailure
	}

	pool, err := connect(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer pool.Close()

	servicingSvc := services.NewServicingService(postgres.NewServicerRecordRepository(pool), postgres.NewAssetRepository(pool))

	result, err := servicingSvc.ImportFeed(ctx, rows)
	if err != nil {
		fmt.Fprintln(os.Stderr, "import feed:", err)
		return subcommands.ExitFailure
	}

	log.WithFields(log.Fields{
		"upserted":  result.Upserted,
		"unmatched": result.Unmatched,
		"skipped":   result.Stats.Skipped,
	}).Info("servicer feed import complete")
	for _, msg := range result.Stats.Errors {
		fmt.Fprintln(os.Stderr, msg)
	}
	return subcommands.ExitSuccess
}

// Command mycojournal manages a cultivation journal: it ingests
// spreadsheet exports of grow data into PostgreSQL, scores grow health,
// and moves full-state backups in and out.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mrlilholt/mycojournal/internal/config"
	"github.com/mrlilholt/mycojournal/internal/database"
	"github.com/mrlilholt/mycojournal/internal/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mycojournal",
	Short: "Cultivation journal: import grow data and score grow health",
	Long: `mycojournal tracks grow runs of gourmet mushroom species.

It ingests CSV/XLSX spreadsheet exports into PostgreSQL, deduplicating
grows by species and block, and computes a rule-based 0-100 health
score per grow from its logs and events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; explicit environment always works
		_ = godotenv.Overload()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore connects to PostgreSQL and ensures the schema exists. The
// returned closer releases the pool.
func openStore(ctx context.Context) (*database.Store, func(), error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pinging database: %w", err)
	}

	store := database.New(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	slog.Debug("database ready", "max_conns", cfg.Database.MaxConns)
	return store, pool.Close, nil
}

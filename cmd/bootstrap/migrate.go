package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"table-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations applies pending versioned migrations with the atlas CLI when
// MIGRATE_ON_START is set. It runs before the HTTP server starts.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	if !cfg.Migration.OnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			client, err := atlasexec.NewClient(".", "atlas")
			if err != nil {
				return fmt.Errorf("init atlas client: %w", err)
			}

			res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
				URL:    cfg.DB.BuildDSN(),
				DirURL: cfg.Migration.Dir,
			})
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}

			logger.Info("Migrations applied",
				"applied", len(res.Applied),
				"current", res.Current,
				"target", res.Target)
			return nil
		},
	})
}

package migration

import (
	"context"
	"fmt"
	"sort"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/repository"
	"github.com/rifa-premiada/backend/pkg/xcontext"
)

type Migrator func(ctx context.Context) error

var Migrators = map[string]Migrator{
	"0000": migrate0000,
	"seed": migrateSeed,
}

// Versions returns the known versions in the order they must run.
func Versions() []string {
	versions := make([]string, 0, len(Migrators))
	for v := range Migrators {
		versions = append(versions, v)
	}

	sort.Strings(versions)
	return versions
}

// Run runs the migrator of version unless it was recorded before.
func Run(ctx context.Context, migrationRepo repository.MigrationRepository, version string) error {
	migrator, ok := Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	// The table recording versions is created by the first migrator.
	if xcontext.DB(ctx).Migrator().HasTable(&entity.Migration{}) {
		done, err := migrationRepo.Exists(ctx, version)
		if err != nil {
			return err
		}

		if done {
			xcontext.Logger(ctx).Infof("Migration %s is already applied", version)
			return nil
		}
	}

	if err := migrator(ctx); err != nil {
		return fmt.Errorf("migration %s: %w", version, err)
	}

	if err := migrationRepo.Save(ctx, version); err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Applied migration %s", version)
	return nil
}

// RunAll runs every migrator which was not applied yet.
func RunAll(ctx context.Context, migrationRepo repository.MigrationRepository) error {
	for _, version := range Versions() {
		if err := Run(ctx, migrationRepo, version); err != nil {
			return err
		}
	}

	return nil
}

package main

import (
	"github.com/rifa-premiada/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()

	if version := cctx.String("version"); version != "" {
		return migration.Run(s.ctx, s.migrationRepo, version)
	}

	return migration.RunAll(s.ctx, s.migrationRepo)
}

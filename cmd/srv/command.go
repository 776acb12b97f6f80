package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "rifa"
	app.Usage = "Rifa Premiada backend"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path of the TOML config file",
			Value:   "config.toml",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	app.Before = s.loadConfig
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it serves the storefront and the admin apis.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the database",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "run only this version, all pending versions if empty",
				},
			},
			Description: `Used to create the tables and seed the first raffle config and prizes.`,
		},
	}

	s.app = app
}

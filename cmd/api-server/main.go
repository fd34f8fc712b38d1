package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/internal/module/user"
	"Agora/pkg/log"
	"Agora/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	var appProvider *server.AppProvider
	load := func(*cli.Context) error {
		conf := config.New(path)
		log.Setup(conf.Debug())
		appProvider = InitServer(conf)
		return nil
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "forum content engine",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Before: load,
				Action: func(ctx *cli.Context) error {
					if appProvider.Config.Database.AutoMigrate {
						if err := migrate(appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:   "migrate",
				Usage:  "create or update forum tables",
				Before: load,
				Action: func(ctx *cli.Context) error {
					return migrate(appProvider.DB)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func migrate(db *gorm.DB) error {
	if err := user.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := dao.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate forum tables: %w", err)
	}
	log.L.Info("database migrated")
	return nil
}

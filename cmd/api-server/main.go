package main

import (
	"Shotshelf/config"
	"Shotshelf/models"
	"Shotshelf/pkg/database"
	"Shotshelf/pkg/log"
	"Shotshelf/pkg/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// 本地开发可以把密钥放在 .env，线上直接用环境变量
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Init(cfg.Log)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "screenshot library with automatic categorization and Figma export",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := db.WithContext(ctx.Context).AutoMigrate(models.All()...); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
			{
				Name:  "categorize",
				Usage: "categorize all uncategorized images of a group",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "group id", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					outcome, err := InitCategorizer(cfg).Categorize(ctx.Context, ctx.String("group"))
					if err != nil {
						return err
					}
					fmt.Printf("pending=%d success=%d failed=%d\n",
						outcome.Pending, outcome.Results.Success, outcome.Results.Failed)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}

package internal

import (
	"context"

	"loyalty_admin/internal/cache"
	"loyalty_admin/internal/cli"
	"loyalty_admin/internal/config"
	"loyalty_admin/internal/gql"
	"loyalty_admin/internal/logging"
	"loyalty_admin/internal/loyalty"
	"loyalty_admin/internal/notify"
	"loyalty_admin/internal/screen"
	"loyalty_admin/internal/session"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		session.Module(),
		gql.Module(),
		cache.Module(),
		loyalty.Module(),
		notify.Module(),
		screen.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}

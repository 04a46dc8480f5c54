package gql

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"gql",
		fx.Provide(NewClient),
	)
}

package loyalty

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"loyalty",
		fx.Provide(NewClient),
	)
}

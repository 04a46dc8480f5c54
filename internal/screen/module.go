package screen

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"screen",
		fx.Provide(NewGuard),
	)
}

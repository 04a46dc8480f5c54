package notify

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"notify",
		fx.Provide(NewCenter),
	)
}

package components

import (
	"offers-service/internal/usecase/commands"
	"offers-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewOfferCommands,
		queries.NewOfferQueries,
	),
)

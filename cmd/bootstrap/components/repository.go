package components

import (
	"offers-service/internal/infra/blobstore"
	"offers-service/internal/infra/readstore"
	"offers-service/internal/infra/repository"
	"offers-service/internal/usecase/commands"
	"offers-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(commands.OfferRecords)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		// The image store serves both sides; one instance, two ports.
		blobstore.NewImageStore,
		func(s *blobstore.ImageStore) commands.ImageBlobs { return s },
		func(s *blobstore.ImageStore) queries.ImageBlobReads { return s },
	),
)

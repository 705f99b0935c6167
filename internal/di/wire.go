//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	chathandler "cosmolink/internal/chat/handler"
	"cosmolink/internal/dbmongo"
	"cosmolink/internal/dbmysql"
	"cosmolink/internal/feed"
	"cosmolink/internal/identity"
	"cosmolink/internal/profile"
)

// InitializeApplication builds the full application graph.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		dbmysql.NewConnection,
		dbmongo.NewMongoConnection,
		ProvideAvatarStorage,
		wire.Bind(new(profile.ObjectStorage), new(*dbmongo.AvatarStorage)),
		profile.NewRepository,
		profile.NewAdapter,
		ProvideIdentityService,
		ProvideStore,
		ProvideEngine,
		chathandler.NewChatHandler,
		profile.NewHandler,
		identity.NewHandler,
		feed.NewService,
		feed.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}

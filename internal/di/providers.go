package di

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"cosmolink/internal/chat"
	chathandler "cosmolink/internal/chat/handler"
	"cosmolink/internal/common"
	"cosmolink/internal/config"
	"cosmolink/internal/dbmongo"
	"cosmolink/internal/feed"
	"cosmolink/internal/identity"
	"cosmolink/internal/profile"
)

// Application bundles everything the binary mounts.
type Application struct {
	Config         *config.Config
	Logger         zerolog.Logger
	DB             *gorm.DB
	Mongo          *dbmongo.MongoClient
	Avatars        *dbmongo.AvatarStorage
	Store          *chat.Store
	Engine         *chat.Engine
	ChatHandler    *chathandler.ChatHandler
	ProfileHandler *profile.Handler
	AuthHandler    *identity.Handler
	FeedHandler    *feed.Handler
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
}

func ProvideAvatarStorage(mc *dbmongo.MongoClient, cfg *config.Config) *dbmongo.AvatarStorage {
	return dbmongo.NewAvatarStorage(mc, cfg.Media.BaseURL)
}

func ProvideIdentityService(repo profile.Repository, cfg *config.Config, logger zerolog.Logger) *identity.Service {
	ttl := time.Duration(cfg.JWT.TTLHours) * time.Hour
	return identity.NewService(repo, []byte(cfg.JWT.Secret), ttl, logger)
}

func ProvideStore() *chat.Store {
	return chat.NewStore(chat.NewDemoSeed())
}

func ProvideEngine(store *chat.Store, cfg *config.Config, logger zerolog.Logger) *chat.Engine {
	return chat.NewEngine(store, logger, chat.WithDelayUnit(cfg.ReplyDelay()))
}

package components

import (
	"tablebook/internal/domain/conversation"
	"tablebook/internal/infra/notifier"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/repository"
	"tablebook/internal/infra/sessionstore"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Slot write side
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		// Slot read side
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Venue read side doubles as the chatbot's catalog
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
			fx.As(new(conversation.Catalog)),
		),
		// Chat session persistence
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
		),
		// Outbox-backed decision notifications
		fx.Annotate(
			notifier.NewOutboxNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewSessionStore(client *redis.Client, cfg config.Config) *sessionstore.RedisSessionStore {
	return sessionstore.NewRedisSessionStore(client, cfg.Redis.SessionTTL)
}

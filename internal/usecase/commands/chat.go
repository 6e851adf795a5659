package commands

import (
	"context"
	"log/slog"

	"tablebook/internal/domain/conversation"
	"tablebook/internal/pkg/errs"
)

//go:generate mockgen -source=chat.go -destination=../../../tests/mock/commands/chat.go -package=commandsmock

var (
	ErrSessionStoreFailed = errs.New("session store operation failed")
	ErrCatalogUnavailable = errs.New("catalog lookup failed")
)

const apologyMessage = "I apologize, but I encountered an error. Let's start over - just say hello!"

type ChatCommands interface {
	ProcessMessage(ctx context.Context, sessionToken, text string) (*conversation.Reply, error)
}

type chatCommandsImpl struct {
	sessions SessionStore
	catalog  conversation.Catalog
}

func NewChatCommands(sessions SessionStore, catalog conversation.Catalog) ChatCommands {
	return &chatCommandsImpl{
		sessions: sessions,
		catalog:  catalog,
	}
}

// ProcessMessage advances one conversation turn. A panic inside the
// transition is absorbed here: the session resets to a fresh greeting and
// the user gets an apology instead of an error. Keeping the session usable
// outweighs conversational continuity. Catalog and session-store failures
// are collaborator problems and do propagate.
func (c *chatCommandsImpl) ProcessMessage(ctx context.Context, sessionToken, text string) (*conversation.Reply, error) {
	blob, err := c.sessions.Load(ctx, sessionToken)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	if blob == nil || !blob.State.IsValid() {
		blob = &SessionBlob{State: conversation.StateGreeting}
	}

	next, reply, err := c.advance(ctx, *blob, text)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	if err := c.sessions.Save(ctx, sessionToken, next); err != nil {
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return &reply, nil
}

func (c *chatCommandsImpl) advance(ctx context.Context, blob SessionBlob, text string) (next SessionBlob, reply conversation.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic while processing chat message", "panic", r)
			next = SessionBlob{State: conversation.StateGreeting}
			reply = conversation.Reply{Kind: conversation.ReplyText, Message: apologyMessage}
			err = nil
		}
	}()

	state, convCtx, reply, err := conversation.Advance(ctx, c.catalog, blob.State, blob.Context, text)
	if err != nil {
		return blob, conversation.Reply{}, err
	}
	return SessionBlob{State: state, Context: convCtx}, reply, nil
}

package contract

import (
	"context"

	"campus-chat-be/pkg/store"
)

type SessionRepository interface {
	Get(ctx context.Context, id string) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
	Count(ctx context.Context) (int, error)
}

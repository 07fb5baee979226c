package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	Search(ctx context.Context, query string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Insert(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
}

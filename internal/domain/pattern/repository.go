package pattern

import "context"

// PatternRepository defines data access for recurring patterns.
type PatternRepository interface {
	Create(ctx context.Context, p RecurringPattern) (RecurringPattern, error)

	GetByID(ctx context.Context, id string) (RecurringPattern, error)

	// List returns all patterns in creation order. Creation order is the
	// precedence order for overlap resolution during expansion.
	List(ctx context.Context) ([]RecurringPattern, error)

	Update(ctx context.Context, p RecurringPattern) (RecurringPattern, error)

	Delete(ctx context.Context, id string) error
}

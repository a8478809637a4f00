package pattern

import "context"

// PatternService defines business logic for recurring patterns.
type PatternService interface {
	Create(ctx context.Context, req CreatePatternRequest) (PatternResponse, error)

	Get(ctx context.Context, id string) (PatternResponse, error)

	List(ctx context.Context) ([]PatternResponse, error)

	Update(ctx context.Context, req UpdatePatternRequest) (PatternResponse, error)

	Delete(ctx context.Context, id string) error

	// Apply expands all enabled patterns over the requested range and
	// persists the result without overwriting existing records.
	Apply(ctx context.Context, req ApplyPatternsRequest) (ApplyPatternsResponse, error)
}

package domain

import (
	"context"
	"time"
)

// ExtractorPort recognizes note commands in free text
type ExtractorPort interface {
	ExtractNote(text string) (NoteIntent, bool)
}

// ResolverPort resolves relative date phrases against a reference day
type ResolverPort interface {
	ResolveDate(phrase string, today time.Time) (string, bool)
}

// MutatorPort executes scoped batch mutations for one owner
type MutatorPort interface {
	ExecuteBatch(ctx context.Context, ownerID string, in BatchMutationInput) (BatchMutationResult, error)
	PreviewBatch(ctx context.Context, ownerID string, in BatchMutationInput) (int64, error)
}

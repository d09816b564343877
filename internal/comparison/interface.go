package comparison

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Compare resolves both URLs, fetches both videos concurrently and scores them.
	// It returns the whole result or an error, never a partial result.
	Compare(ctx context.Context, input CompareInput) (ComparisonResult, error)
}

// Publisher announces finished comparisons.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishCompleted(ctx context.Context, result ComparisonResult) error
}
